package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/aKrishnan0817/uchicago-ai-advisor/internal/errors"
)

func TestGetSendsIdentifyingUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 0, 0)
	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, userAgent, gotUA)
	assert.Contains(t, gotUA, "UChicago-AcademicAdvisor-Bot")
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 0, 3)
	_, err := c.Get(context.Background(), srv.URL)
	require.Error(t, err)

	var scraperErr *apperrors.ScraperError
	require.ErrorAs(t, err, &scraperErr)
	assert.Equal(t, http.StatusNotFound, scraperErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 0, 5)
	c.retryDelay = time.Millisecond
	resp, err := c.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, int32(3), calls.Load())
}

func TestGetDocumentParsesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1 id="title">Programs of Study</h1></body></html>`))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, 0, 0)
	doc, err := c.GetDocument(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Programs of Study", doc.Find("#title").Text())
}

func TestWaitEnforcesDelay(t *testing.T) {
	c := NewClient(5*time.Second, 50*time.Millisecond, 0)

	start := time.Now()
	require.NoError(t, c.wait(context.Background()))
	require.NoError(t, c.wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestWaitRespectsContextCancellation(t *testing.T) {
	c := NewClient(5*time.Second, time.Hour, 0)
	require.NoError(t, c.wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, c.wait(ctx))
}
