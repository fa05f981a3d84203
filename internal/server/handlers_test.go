package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pubudushehan/Ontology-classifies-emotion/internal/config"
	"github.com/pubudushehan/Ontology-classifies-emotion/internal/domain"
)

// fakeClassifier returns a canned result or error.
type fakeClassifier struct {
	result  domain.Classification
	err     error
	gotText string
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (domain.Classification, error) {
	f.gotText = text
	if f.err != nil {
		return domain.Classification{}, f.err
	}
	result := f.result
	result.Text = text
	return result, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8080",
		RateLimit: 100,
		RateBurst: 100,
	}
}

func newTestServer(t *testing.T, classifier domain.Classifier, checks ...HealthCheck) *Server {
	t.Helper()
	return NewServer(testConfig(), classifier, checks...)
}

func TestHandleClassify_Get(t *testing.T) {
	fake := &fakeClassifier{result: domain.Classification{
		Label:      domain.EmotionSad,
		Confidence: 0.5,
		Method:     domain.MethodOntology,
		Evidence: []domain.Evidence{
			{Token: "දුකයි", Trigger: "දුක", Frame: "SadEmotion", Emotion: domain.EmotionSad, Weight: 1.0},
		},
	}}
	srv := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/classify?text="+`%E0%B6%AF%E0%B7%94%E0%B6%9A%E0%B6%BA%E0%B7%92`, nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "දුකයි", fake.gotText)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Sad", resp["emotion"])
	assert.Equal(t, "ontology", resp["method"])
	assert.Equal(t, 0.5, resp["confidence"])

	matched, ok := resp["matched_words"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, matched, "Sad")
}

func TestHandleClassify_Post(t *testing.T) {
	fake := &fakeClassifier{result: domain.Classification{
		Label:      domain.EmotionHappy,
		Confidence: 0.75,
		Method:     domain.MethodOntologyDominant,
	}}
	srv := newTestServer(t, fake)

	body := `{"text": "මම සතුටින්"}`
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "මම සතුටින්", fake.gotText)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Happy", resp["emotion"])
	assert.Equal(t, "ontology-dominant", resp["method"])
}

func TestHandleClassify_EmptyTextPassedThrough(t *testing.T) {
	fake := &fakeClassifier{result: domain.Classification{
		Label:      domain.EmotionNeutral,
		Confidence: 1,
		Method:     domain.MethodDefault,
	}}
	srv := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/classify", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Neutral", resp["emotion"])
	assert.Equal(t, "default", resp["method"])
}

func TestHandleClassify_TextTooLong(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{})

	body := fmt.Sprintf(`{"text": %q}`, strings.Repeat("අ", 2001))
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleClassify_FallbackUnavailableIs503(t *testing.T) {
	fake := &fakeClassifier{err: fmt.Errorf("classify %q: %w", "text", domain.ErrFallbackUnavailable)}
	srv := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/classify?text=hello", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleClassify_InternalErrorIs500(t *testing.T) {
	fake := &fakeClassifier{err: fmt.Errorf("boom")}
	srv := newTestServer(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/classify?text=hello", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCorrelationIDEchoedBack(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	req.Header.Set(requestIDHeader, "corr-123")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, "corr-123", rec.Header().Get(requestIDHeader))
}

func TestCorrelationIDGenerated(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHandleLiveness(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleReadiness_AllChecksPass(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{},
		HealthCheck{Name: "encoder", Check: func(context.Context) error { return nil }},
	)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp["status"])
}

func TestHandleReadiness_FailingCheck(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{},
		HealthCheck{Name: "encoder", Check: func(context.Context) error { return fmt.Errorf("down") }},
	)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Equal(t, "encoder", resp["failed_check"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, &fakeClassifier{})

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dev", resp["version"])
	assert.NotEmpty(t, resp["go_version"])
}
