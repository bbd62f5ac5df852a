package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal-engine/internal/catalog"
	"jobportal-engine/internal/domain"
	"jobportal-engine/internal/events"
	"jobportal-engine/internal/metrics"
	"jobportal-engine/internal/ratelimit"
	"jobportal-engine/internal/session"
	"jobportal-engine/internal/store"
)

type fakeLogos map[string]store.Logo

func (f fakeLogos) GetLogo(_ context.Context, ref string) (store.Logo, error) {
	l, ok := f[store.NormalizeRef(ref)]
	if !ok {
		return store.Logo{}, store.ErrLogoNotFound
	}
	return l, nil
}

type env struct {
	deps    Deps
	handler http.Handler
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEnv(t *testing.T, mod ...func(*Deps)) *env {
	t.Helper()
	log := quietLogger()
	hub := events.NewHub(log)
	m := metrics.New()

	s, err := session.New(catalog.Default(),
		session.WithLogger(log),
		session.WithNotifier(session.Notifiers{hub, m}),
	)
	require.NoError(t, err)

	d := Deps{
		Session: s,
		Hub:     hub,
		Logos: fakeLogos{
			"clogo1.jpg": {Ref: "clogo1.jpg", ContentType: "image/jpeg", Bytes: []byte{0xff, 0xd8, 0xff}},
		},
		Metrics: m,
		Log:     log,
	}
	for _, f := range mod {
		f(&d)
	}
	return &env{deps: d, handler: Handler(NewMux(d), d)}
}

func (e *env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[APIError](t, rec).Error.Code
}

const validApplication = `{
	"firstName": "Jane",
	"lastName": "Roe",
	"email": "jane.roe@gmail.com",
	"skills": ["Node.js", "MongoDB"],
	"aboutMe": "<p>Backend person</p><script>alert(1)</script>"
}`

func TestHealth(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]any](t, rec)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestJobsList(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.JobPosting](t, rec), 6)

	rec = e.do(t, http.MethodGet, "/jobs?q=DEVELOPER", "")
	require.Equal(t, http.StatusOK, rec.Code)
	jobs := decode[[]domain.JobPosting](t, rec)
	require.Len(t, jobs, 3)
	assert.Equal(t, []int{1, 2, 4}, []int{jobs[0].ID, jobs[1].ID, jobs[2].ID})

	rec = e.do(t, http.MethodGet, "/jobs?q=nothing-like-this", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestJobGet(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/jobs/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	job := decode[domain.JobPosting](t, rec)
	assert.Equal(t, "Data Scientist", job.Title)
	assert.False(t, job.Applied)

	rec = e.do(t, http.MethodGet, "/jobs/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job_not_found", errorCode(t, rec))

	rec = e.do(t, http.MethodGet, "/jobs/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_id", errorCode(t, rec))
}

func TestSkills(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/skills", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Skill](t, rec), len(catalog.Skills()))
}

func TestSessionFlow(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "browsing", decode[map[string]any](t, rec)["state"])

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	snap := decode[session.Snapshot](t, rec)
	assert.Equal(t, session.Viewing, snap.State)
	require.NotNil(t, snap.SelectedJob)
	assert.Equal(t, 2, snap.SelectedJob.ID)

	rec = e.do(t, http.MethodPost, "/session/apply", `{"firstName":"John1","email":"a@yahoo.com","skills":[]}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	apiErr := decode[APIError](t, rec)
	assert.Equal(t, "validation_failed", apiErr.Error.Code)
	assert.Equal(t, "First Name should only contain letters", apiErr.Error.Fields["firstName"])
	assert.Equal(t, "Last Name is required", apiErr.Error.Fields["lastName"])
	assert.Equal(t, "Email must be a valid Gmail address", apiErr.Error.Fields["email"])
	assert.Equal(t, "Select at least one skill", apiErr.Error.Fields["skills"])
	assert.Equal(t, "About Me is required", apiErr.Error.Fields["aboutMe"])

	rec = e.do(t, http.MethodPost, "/session/apply", validApplication)
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decode[session.Snapshot](t, rec)
	assert.Equal(t, session.Applied, snap.State)
	require.NotNil(t, snap.FormData)
	assert.Equal(t, "Jane", snap.FormData.FirstName)
	assert.True(t, snap.SelectedJob.Applied)

	rec = e.do(t, http.MethodPost, "/session/apply", validApplication)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", errorCode(t, rec))

	rec = e.do(t, http.MethodGet, "/session/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	sum := decode[session.Summary](t, rec)
	assert.Equal(t, 2, sum.Job.ID)
	assert.Equal(t, "jane.roe@gmail.com", sum.Form.Email)

	rec = e.do(t, http.MethodPost, "/session/close", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session.Browsing, decode[session.Snapshot](t, rec).State)

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already_applied", errorCode(t, rec))

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	snap = decode[session.Snapshot](t, rec)
	assert.Equal(t, 1, snap.SelectedJob.ID)
	require.NotNil(t, snap.FormData)
	assert.Equal(t, "Jane", snap.FormData.FirstName)

	rec = e.do(t, http.MethodGet, "/applications/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Roe", decode[domain.ApplicationFormData](t, rec).LastName)

	rec = e.do(t, http.MethodGet, "/applications/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_applied", errorCode(t, rec))

	rec = e.do(t, http.MethodGet, "/applications/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job_not_found", errorCode(t, rec))

	rec = e.do(t, http.MethodGet, "/jobs", "")
	jobs := decode[[]domain.JobPosting](t, rec)
	assert.True(t, jobs[1].Applied)
	assert.False(t, jobs[0].Applied)
}

func TestSelectErrors(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/session/select", `{"id":99}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "job_not_found", errorCode(t, rec))

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":1,"extra":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_json", errorCode(t, rec))

	rec = e.do(t, http.MethodPost, "/session/select", `{"id":1}{"id":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApplyWithoutSelection(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/session/apply", validApplication)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "no_job_selected", errorCode(t, rec))
	assert.Equal(t, session.Browsing, e.deps.Session.Snapshot().State)
}

func TestApplyRateLimited(t *testing.T) {
	e := newEnv(t, func(d *Deps) { d.Limiter = ratelimit.New(0.001, 1) })
	e.do(t, http.MethodPost, "/session/select", `{"id":3}`)

	rec := e.do(t, http.MethodPost, "/session/apply", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = e.do(t, http.MethodPost, "/session/apply", validApplication)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", errorCode(t, rec))
	assert.Equal(t, session.Viewing, e.deps.Session.Snapshot().State)
}

func TestSummaryNothingToShow(t *testing.T) {
	e := newEnv(t)

	for _, path := range []string{"/session/summary", "/session/summary.html", "/session/summary.txt", "/session/summary.pdf"} {
		rec := e.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "nothing_to_show", errorCode(t, rec), path)
	}
}

func TestSummaryExports(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, "/session/select", `{"id":2}`)
	require.Equal(t, http.StatusOK, e.do(t, http.MethodPost, "/session/apply", validApplication).Code)

	rec := e.do(t, http.MethodGet, "/session/summary.txt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Job Application Details")
	assert.Contains(t, body, "Backend Developer")
	assert.Contains(t, body, "Skills: Node.js, MongoDB")
	assert.Contains(t, body, "Backend person")
	assert.NotContains(t, body, "alert(1)")

	rec = e.do(t, http.MethodGet, "/session/summary.html", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "alert(1)")
	assert.NotContains(t, rec.Body.String(), "<script")

	// No renderer configured in this environment.
	rec = e.do(t, http.MethodGet, "/session/summary.pdf", "")
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "pdf_disabled", errorCode(t, rec))
}

func TestValidateEndpoint(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/applications/validate",
		`{"fields":{"firstName":"John1","email":"a@yahoo.com"},"touched":["firstName"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp validateResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Valid)
	assert.Equal(t, map[string]string{"firstName": "First Name should only contain letters"}, map[string]string(resp.Errors))

	rec = e.do(t, http.MethodPost, "/applications/validate",
		`{"fields":`+validApplication+`,"touched":["firstName","lastName","email","skills","aboutMe"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = validateResp{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Errors)
}

func TestLogo(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/logo/CLOGO1.jpg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0xff, 0xd8, 0xff}, rec.Body.Bytes())

	rec = e.do(t, http.MethodGet, "/logo/missing.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "logo_not_found", errorCode(t, rec))
}

func TestConfigEndpointHidesSecrets(t *testing.T) {
	e := newEnv(t, func(d *Deps) {
		d.Config.App.Addr = "127.0.0.1:9999"
		d.Config.App.ShutdownToken = "s3cret"
		d.Config.Export.UnidocLicenseKey = "lic-key"
	})

	rec := e.do(t, http.MethodGet, "/config", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "127.0.0.1:9999")
	assert.NotContains(t, rec.Body.String(), "s3cret")
	assert.NotContains(t, rec.Body.String(), "lic-key")
}

func TestMetricsEndpoint(t *testing.T) {
	e := newEnv(t)
	e.do(t, http.MethodPost, "/session/select", `{"id":1}`)

	rec := e.do(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `jobportal_session_transitions_total{event="job_selected"} 1`)
	assert.Contains(t, body, `jobportal_http_requests_total{code="200",route="/session/select"} 1`)
}

func TestMethodNotAllowed(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/session/apply", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
	assert.Equal(t, "method_not_allowed", errorCode(t, rec))
}

func TestUnknownRoute(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}
