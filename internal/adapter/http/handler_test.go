package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audience-intel/internal/core/domain"
	"audience-intel/internal/core/port"
	"audience-intel/internal/ratelimit"
)

type fakeUseCase struct {
	env      *port.PlanEnvelope
	genErr   error
	rec      *port.PlanRecord
	getErr   error
	artifact []byte
	artErr   error
}

func (f *fakeUseCase) Generate(context.Context, string, bool) (*port.PlanEnvelope, error) {
	return f.env, f.genErr
}

func (f *fakeUseCase) Get(context.Context, string) (*port.PlanRecord, error) {
	return f.rec, f.getErr
}

func (f *fakeUseCase) Artifact(context.Context, string, string) ([]byte, error) {
	return f.artifact, f.artErr
}

func newTestHandler(svc port.PlanUseCase, limiter port.LimitStore) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if limiter == nil {
		limiter = ratelimit.NewMemory(1000, time.Minute)
	}
	return NewHandler(svc, limiter, logger)
}

func doRequest(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestGeneratePlanOK(t *testing.T) {
	svc := &fakeUseCase{env: &port.PlanEnvelope{
		Plan:     domain.DryRunFixture(),
		Markdown: domain.DryRunMarkdown,
		ID:       "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	}}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"client: {}","options":{"dry_run":true}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		JSON     *domain.Plan `json:"json"`
		Markdown string       `json:"markdown"`
		ID       string       `json:"id"`
		Warnings []string     `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Green Fork", body.JSON.Client.BusinessName)
	assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", body.ID)
	assert.Nil(t, body.Warnings)
	assert.NotContains(t, rec.Body.String(), `"warnings"`)
}

func TestGeneratePlanWarnings(t *testing.T) {
	svc := &fakeUseCase{env: &port.PlanEnvelope{
		Plan:     domain.DryRunFixture(),
		Markdown: "# md",
		ID:       "id",
		Warnings: []string{"Total segment size (38000) exceeds market size estimate (30000)"},
	}}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"client: {}"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "exceeds market size estimate")
}

func TestGeneratePlanBadBody(t *testing.T) {
	h := newTestHandler(&fakeUseCase{}, nil)

	rec := doRequest(h, http.MethodPost, "/plan", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePlanEmptyYAML(t *testing.T) {
	h := newTestHandler(&fakeUseCase{}, nil)

	rec := doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"   "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "yaml_input")
}

func TestGeneratePlanErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"bad yaml", domain.NewError(domain.KindBadSyntax, "invalid YAML"), http.StatusBadRequest},
		{"input shape", domain.NewError(domain.KindInputShape, "brief invalid"), http.StatusUnprocessableEntity},
		{"output shape", domain.NewError(domain.KindOutputShape, "plan invalid"), http.StatusUnprocessableEntity},
		{"business rule", domain.NewError(domain.KindBusinessRule, "segment names must be unique"), http.StatusUnprocessableEntity},
		{"extraction", domain.NewError(domain.KindExtraction, "no JSON"), http.StatusBadGateway},
		{"storage", domain.NewError(domain.KindStorage, "disk full"), http.StatusInternalServerError},
		{"generic", io.ErrUnexpectedEOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeUseCase{genErr: tt.err}, nil)
			rec := doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"client: {}"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetPlanWithPDF(t *testing.T) {
	svc := &fakeUseCase{rec: &port.PlanRecord{
		ID:        "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		JSON:      json.RawMessage(`{"client":{}}`),
		Markdown:  "# md",
		PDFExists: true,
	}}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodGet, "/plans/01ARZ3NDEKTSV4RRFFQ69G5FAV", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/files/01ARZ3NDEKTSV4RRFFQ69G5FAV/ait.pdf", body["pdf_url"])
}

func TestGetPlanNotFound(t *testing.T) {
	svc := &fakeUseCase{getErr: domain.NewError(domain.KindNotFound, "plan not found")}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodGet, "/plans/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFileAllowList(t *testing.T) {
	svc := &fakeUseCase{artifact: []byte("# report")}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodGet, "/files/id/ait.md", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown", rec.Header().Get("Content-Type"))
	assert.Equal(t, "# report", rec.Body.String())

	rec = doRequest(h, http.MethodGet, "/files/id/secrets.txt", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetFileMissing(t *testing.T) {
	svc := &fakeUseCase{artErr: domain.NewError(domain.KindNotFound, "artifact not found")}
	h := newTestHandler(svc, nil)

	rec := doRequest(h, http.MethodGet, "/files/id/ait.pdf", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateLimitExceeded(t *testing.T) {
	svc := &fakeUseCase{env: &port.PlanEnvelope{Plan: domain.DryRunFixture(), Markdown: "m", ID: "id"}}
	h := newTestHandler(svc, ratelimit.NewMemory(1, time.Minute))

	rec := doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"client: {}"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(h, http.MethodPost, "/plan", `{"yaml_input":"client: {}"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitKeyedByClient(t *testing.T) {
	svc := &fakeUseCase{env: &port.PlanEnvelope{Plan: domain.DryRunFixture(), Markdown: "m", ID: "id"}}
	h := newTestHandler(svc, ratelimit.NewMemory(1, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"yaml_input":"client: {}"}`))
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(`{"yaml_input":"client: {}"}`))
	req.Header.Set("X-Forwarded-For", "10.0.0.2")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "a different client keeps its own budget")
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestHandler(&fakeUseCase{getErr: domain.NewError(domain.KindNotFound, "nope")}, nil)

	rec := doRequest(h, http.MethodGet, "/plans/x", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
