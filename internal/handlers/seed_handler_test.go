package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	handler "dashboard-seed-backend/internal/handlers"
	"dashboard-seed-backend/internal/services/seeder"
)

type fakeSeeder struct {
	res *seeder.Result
	err error
}

func (f *fakeSeeder) Run(ctx context.Context) (*seeder.Result, error) {
	return f.res, f.err
}

func seedRouter(s handler.Seeder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewSeedHandler(s, nil, zap.NewNop())
	r.GET("/api/seed", h.Seed)
	return r
}

func TestSeedSuccess(t *testing.T) {
	res := &seeder.Result{Inserted: map[string]int{
		"users": 1, "customers": 8, "invoices": 13, "revenues": 12,
	}}
	r := seedRouter(&fakeSeeder{res: res})

	req := httptest.NewRequest(http.MethodGet, "/api/seed", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["message"] == "" {
		t.Error("response missing message field")
	}
	if body["error"] != "" {
		t.Errorf("success response carries error %q", body["error"])
	}
}

func TestSeedFailureReturns500(t *testing.T) {
	r := seedRouter(&fakeSeeder{err: errors.New("database unreachable after 5 attempts")})

	req := httptest.NewRequest(http.MethodGet, "/api/seed", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"] == "" {
		t.Error("failure response missing error field")
	}
}
