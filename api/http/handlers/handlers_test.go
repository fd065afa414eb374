package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/ragguard/pkg/filter"
	"github.com/artem13815/ragguard/pkg/health"
	"github.com/artem13815/ragguard/pkg/logger"
	"github.com/artem13815/ragguard/pkg/prompt"
	"github.com/artem13815/ragguard/pkg/relevance"
)

type filterStub struct{ got string }

func (s *filterStub) Check(_ context.Context, q string) filter.Verdict {
	s.got = q
	return filter.Verdict{Valid: true, Reason: "ok", CleanQuestion: "Bagaimana cara membuat KTP?"}
}

type relevanceStub struct{ q, a string }

func (s *relevanceStub) Check(_ context.Context, q, a string) relevance.Verdict {
	s.q, s.a = q, a
	return relevance.Verdict{Relevant: false, Reason: "kota lain", ReformulatedQuestion: "Apa syarat KTP Medan?"}
}

type failingChecker struct{}

func (failingChecker) Name() string                { return "postgres" }
func (failingChecker) Check(context.Context) error { return errors.New("down") }

func request(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp, out
}

func TestGatekeeperFilter(t *testing.T) {
	fs := &filterStub{}
	h := NewGatekeeperHandler(fs, &relevanceStub{})
	app := fiber.New()
	app.Use(RequestLogger(logger.Nop()))
	app.Post("/filter", h.Filter)

	resp, body := request(t, app, http.MethodPost, "/filter", `{"question":"bagaimana cara membuat ktp"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
	assert.Equal(t, "bagaimana cara membuat ktp", fs.got)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, "Bagaimana cara membuat KTP?", body["clean_question"])

	resp, body = request(t, app, http.MethodPost, "/filter", `{"question":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, resp.Header.Get(HeaderRequestID), body["requestId"])
}

func TestGatekeeperRelevance(t *testing.T) {
	rs := &relevanceStub{}
	h := NewGatekeeperHandler(&filterStub{}, rs)
	app := fiber.New()
	app.Post("/relevance", h.Relevance)

	resp, body := request(t, app, http.MethodPost, "/relevance", `{"question":"syarat ktp","answer":"jadwal bus"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "syarat ktp", rs.q)
	assert.Equal(t, "jadwal bus", rs.a)
	assert.Equal(t, false, body["relevant"])
	assert.Equal(t, "Apa syarat KTP Medan?", body["reformulated_question"])

	resp, _ = request(t, app, http.MethodPost, "/relevance", `{"answer":"x"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPromptAdministration(t *testing.T) {
	store := prompt.NewMemoryStore(nil)
	h := NewPromptHandler(store, map[string]string{prompt.KeyPreFilter: "\n default filter \n"})
	app := fiber.New()
	app.Get("/prompts/:name", h.Get)
	app.Put("/prompts/:name", h.Put)
	app.Delete("/prompts/:name", h.Delete)

	path := "/prompts/" + prompt.KeyPreFilter

	resp, body := request(t, app, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "default filter", body["value"])
	assert.Equal(t, false, body["override"])

	resp, _ = request(t, app, http.MethodPut, path, `{"value":"  "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = request(t, app, http.MethodPut, path, `{"value":"prompt baru"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["override"])
	v, err := store.Get(context.Background(), prompt.KeyPreFilter)
	require.NoError(t, err)
	assert.Equal(t, "prompt baru", v)

	resp, body = request(t, app, http.MethodGet, path, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "prompt baru", body["value"])

	resp, _ = request(t, app, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = request(t, app, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = request(t, app, http.MethodGet, "/prompts/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthProbes(t *testing.T) {
	app := fiber.New()
	up := NewHealthHandler(health.NewService(), "memory")
	down := NewHealthHandler(health.NewService(failingChecker{}), "postgres")
	app.Get("/health", up.Health)
	app.Get("/ready", up.Ready)
	app.Get("/ready-down", down.Ready)

	resp, _ := request(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := request(t, app, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "memory", body["prompt_store"])

	resp, body = request(t, app, http.MethodGet, "/ready-down", "")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, body["details"], "postgres")
}

func TestPromptOverrideSurvivesLaterRequests(t *testing.T) {
	store := prompt.NewMemoryStore(nil)
	h := NewPromptHandler(store, nil)

	app := fiber.New()
	app.Get("/prompts/:name", h.Get)
	app.Put("/prompts/:name", h.Put)

	resp, _ := request(t, app, http.MethodPut, "/prompts/"+prompt.KeyPreFilter, `{"value":"override"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for i := 0; i < 50; i++ {
		resp, _ = request(t, app, http.MethodGet, "/prompts/xxxxxxxxxxxxxxxxxxxxx", "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	v, err := store.Get(context.Background(), prompt.KeyPreFilter)
	require.NoError(t, err)
	assert.Equal(t, "override", v)
}

func TestRequestLoggerPropagatesRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestLogger(logger.Nop()))
	app.Get("/id", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": logger.RequestID(c.UserContext())})
	})

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestID, "upstream-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "upstream-1", body["id"])
	assert.Equal(t, "upstream-1", resp.Header.Get(HeaderRequestID))

	_, out := request(t, app, http.MethodGet, "/id", "")
	assert.NotEmpty(t, out["id"])
}
