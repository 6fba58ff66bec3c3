package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/sigles"
	sigleshttp "github.com/fwojciec/sigles/http"
	"github.com/fwojciec/sigles/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, svc sigles.LookupService, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	s := sigleshttp.NewServer(svc, discardLogger())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	s.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func ongRecord() *sigles.Record {
	return &sigles.Record{
		Source:     sigles.SourceUsito,
		Term:       "ONG",
		Definition: "Une organisation non gouvernementale.",
		URL:        "https://usito.usherbrooke.ca/d%C3%A9finitions/ONG",
	}
}

func TestServer_Index(t *testing.T) {
	t.Parallel()

	rec, body := serve(t, &mock.LookupService{}, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, body["message"], "abréviations")
	assert.Len(t, body["usage"], 2)
	assert.Len(t, body["sources"], len(sigles.Sources))
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	rec, body := serve(t, &mock.LookupService{}, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, body)
}

func TestServer_LookupUsito(t *testing.T) {
	t.Parallel()

	t.Run("returns usito record", func(t *testing.T) {
		t.Parallel()

		var gotTerm string
		svc := &mock.LookupService{
			LookupUsitoFn: func(ctx context.Context, term string) (*sigles.Record, error) {
				gotTerm = term
				return ongRecord(), nil
			},
		}

		rec, body := serve(t, svc, "/recherche?abreviation=%20ong%20")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ong", gotTerm)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "ONG", body["abbreviation"])
		record := body["record"].(map[string]any)
		assert.Equal(t, "usito", record["source"])
		assert.Equal(t, "Une organisation non gouvernementale.", record["definition"])
	})

	t.Run("returns 400 when parameter is missing", func(t *testing.T) {
		t.Parallel()

		rec, body := serve(t, &mock.LookupService{}, "/recherche")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Paramètre 'abreviation' manquant", body["error"])
		assert.Equal(t, "/recherche?abreviation=ONG", body["usage"])
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		t.Parallel()

		svc := &mock.LookupService{
			LookupUsitoFn: func(ctx context.Context, term string) (*sigles.Record, error) {
				return nil, sigles.Errorf(sigles.ENOTFOUND, "%q not found in usito", term)
			},
		}

		rec, body := serve(t, svc, "/recherche?abreviation=ZZZQQQ")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, `"ZZZQQQ" not found in usito`, body["error"])
	})

	t.Run("hides internal errors", func(t *testing.T) {
		t.Parallel()

		svc := &mock.LookupService{
			LookupUsitoFn: func(ctx context.Context, term string) (*sigles.Record, error) {
				return nil, assert.AnError
			},
		}

		rec, body := serve(t, svc, "/recherche?abreviation=ONG")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal error.", body["error"])
	})

	t.Run("recovers from panics", func(t *testing.T) {
		t.Parallel()

		svc := &mock.LookupService{
			LookupUsitoFn: func(ctx context.Context, term string) (*sigles.Record, error) {
				panic("boom")
			},
		}

		rec, body := serve(t, svc, "/recherche?abreviation=ONG")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, false, body["success"])
	})
}

func TestServer_LookupAll(t *testing.T) {
	t.Parallel()

	t.Run("returns records of every source", func(t *testing.T) {
		t.Parallel()

		svc := &mock.LookupService{
			LookupAllFn: func(ctx context.Context, term string) (*sigles.Result, error) {
				return &sigles.Result{
					Term: "ONG",
					Records: []*sigles.Record{
						ongRecord(),
						{Source: sigles.SourceAllAcronyms, Term: "ONG", Definition: "Non-Governmental Organization"},
					},
				}, nil
			},
		}

		rec, body := serve(t, svc, "/recherche/sources?abreviation=ONG")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, body["success"])
		records := body["records"].([]any)
		require.Len(t, records, 2)
		assert.Equal(t, "usito", records[0].(map[string]any)["source"])
		assert.Equal(t, "allacronyms", records[1].(map[string]any)["source"])
	})

	t.Run("returns 400 when parameter is blank", func(t *testing.T) {
		t.Parallel()

		rec, body := serve(t, &mock.LookupService{}, "/recherche/sources?abreviation=%20")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "/recherche/sources?abreviation=ONG", body["usage"])
	})

	t.Run("maps unavailable to 502", func(t *testing.T) {
		t.Parallel()

		svc := &mock.LookupService{
			LookupAllFn: func(ctx context.Context, term string) (*sigles.Result, error) {
				return nil, sigles.Errorf(sigles.EUNAVAILABLE, "sources unreachable")
			},
		}

		rec, _ := serve(t, svc, "/recherche/sources?abreviation=ONG")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestServer_RequestID(t *testing.T) {
	t.Parallel()

	t.Run("echoes caller request id", func(t *testing.T) {
		t.Parallel()

		s := sigleshttp.NewServer(&mock.LookupService{}, discardLogger())
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(sigleshttp.RequestIDHeader, "req-123")
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, req)

		assert.Equal(t, "req-123", rec.Header().Get(sigleshttp.RequestIDHeader))
	})

	t.Run("generates request id", func(t *testing.T) {
		t.Parallel()

		s := sigleshttp.NewServer(&mock.LookupService{}, discardLogger())
		rec := httptest.NewRecorder()

		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Len(t, rec.Header().Get(sigleshttp.RequestIDHeader), 36)
	})
}

func TestServer_Open(t *testing.T) {
	t.Parallel()

	s := sigleshttp.NewServer(&mock.LookupService{}, discardLogger())
	s.Addr = "127.0.0.1:0"
	require.NoError(t, s.Open())
	defer s.Close()

	resp, err := http.Get(s.URL() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
