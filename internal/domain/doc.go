// Package domain contains shared domain types used across entity sub-packages.
// Entity types live in sub-packages (domain/batch, domain/course, domain/month);
// admission rules live in domain/gate and the derived presentation model in
// domain/hierarchy. This root package holds sentinel errors, the validation
// and rejection error types, and the case-insensitive name comparison that
// every uniqueness rule shares.
package domain
