package main

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/campus-sim/internal/storage/sqlite"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return newRouter(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseConfig(t *testing.T) {
	t.Setenv("CAMPUS_HTTP_ADDR", ":8080")
	cfg, err := parseConfig(flag.NewFlagSet("server", flag.ContinueOnError), []string{"-db", "x.db"})
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "x.db", cfg.DBPath)
}

func TestCORSPreflight(t *testing.T) {
	w := do(newTestRouter(t), http.MethodOptions, "/runs", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetTracks(t *testing.T) {
	w := do(newTestRouter(t), http.MethodGet, "/tracks", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Tracks []string `json:"tracks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"science", "medicine", "business", "arts"}, body.Tracks)
}

func TestGetPlan(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/plan/stem", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Plan struct {
			Track string `json:"track"`
		} `json:"plan"`
		Report string `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "science", body.Plan.Track)
	assert.NotEmpty(t, body.Report)

	w = do(r, http.MethodGet, "/plan/arts/csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.True(t, strings.HasPrefix(w.Body.String(), "term,course_id,course_name"))
}

func TestRunsLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/runs", `{"track":"medicine","background":"poor","seed":3}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created struct {
		ID      string `json:"id"`
		Summary struct {
			Track string `json:"track"`
			Terms []any  `json:"terms"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "medicine", created.Summary.Track)
	assert.Len(t, created.Summary.Terms, 8)

	w = do(r, http.MethodGet, "/runs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Runs []sqlite.RunRecord `json:"runs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Runs, 1)
	assert.Equal(t, created.ID, list.Runs[0].ID)

	w = do(r, http.MethodGet, "/runs/"+created.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var run sqlite.RunRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &run))
	assert.Equal(t, "poor", run.Background)
	assert.Len(t, run.Terms, 8)

	w = do(r, http.MethodGet, "/runs/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostRunValidation(t *testing.T) {
	r := newTestRouter(t)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/runs", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/runs", `{"track":"arts","background":"royal"}`).Code)
}
