package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/batch-service/internal/domain/batch"
	"github.com/jsamuelsen11/batch-service/internal/domain/course"
	"github.com/jsamuelsen11/batch-service/internal/domain/month"
	"github.com/jsamuelsen11/batch-service/mocks"
)

const testRenamed = "Renamed"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validBatch() batch.Batch {
	return batch.Batch{ID: "b-1", Name: "Spring 2024", CreatedAt: testTime}
}

func validCourse() course.Course {
	return course.Course{ID: "c-1", Name: "Math", BatchID: "b-1", CreatedAt: testTime}
}

func validMonth() month.Month {
	return month.Month{
		ID:        "m-1",
		Name:      "January",
		Number:    1,
		CourseID:  "c-1",
		Payment:   decimal.RequireFromString("100.5"),
		CreatedAt: testTime,
	}
}

func newMocks(t *testing.T) (*mocks.MockLifecycleService, *mocks.MockHierarchyViewer) {
	t.Helper()
	return mocks.NewMockLifecycleService(t), mocks.NewMockHierarchyViewer(t)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
