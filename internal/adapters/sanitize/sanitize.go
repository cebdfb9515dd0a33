// Package sanitize strips markup from user-supplied names before they reach
// validation or storage.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jsamuelsen11/batch-service/internal/ports"
)

// Compile-time check that Policy implements ports.Sanitizer.
var _ ports.Sanitizer = (*Policy)(nil)

// maxPasses bounds how many layers of entity encoding Sanitize peels off.
const maxPasses = 4

// Policy removes every HTML element and attribute, keeping only text.
// Entity-encoded markup such as "&lt;b&gt;" is decoded first so it is
// stripped like a literal tag. Text entities are decoded in the result, so
// "Math & Physics" stays readable.
type Policy struct {
	p *bluemonday.Policy
}

// New returns a strict text-only Policy. It is safe for concurrent use.
func New() *Policy {
	return &Policy{p: bluemonday.StrictPolicy()}
}

// Sanitize implements ports.Sanitizer. The result is a fixed point:
// sanitizing it again returns it unchanged.
func (s *Policy) Sanitize(in string) string {
	out := in
	for range maxPasses {
		next := html.UnescapeString(s.p.Sanitize(html.UnescapeString(out)))
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}
