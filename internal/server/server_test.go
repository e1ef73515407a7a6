package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/deck"
	"github.com/arcanaland/arcanaview/internal/decktest"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := decktest.Write(t, t.TempDir(), decktest.AllCardIDs()...)
	d, err := deck.LoadDeck(dir)
	require.NoError(t, err)

	var logs bytes.Buffer
	s, err := New(d, config.Default(), log.New(&logs, "", 0))
	require.NoError(t, err)
	s.newSeed = func() int64 { return 99 }
	return s, &logs
}

func diagnostics(logs *bytes.Buffer) []string {
	var out []string
	for _, line := range strings.Split(logs.String(), "\n") {
		if strings.HasPrefix(line, config.DefaultDiagnosticLabel) {
			out = append(out, line)
		}
	}
	return out
}

func TestIndexScansRenderedSpread(t *testing.T) {
	s, logs := newTestServer(t)
	router := s.Router()

	reading, err := s.Draw(12345, 10)
	require.NoError(t, err)
	reversed := 0
	for _, c := range reading.Cards {
		if c.IsReversed {
			reversed++
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?seed=12345&count=10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/html")
	require.Equal(t, 10, strings.Count(w.Body.String(), `<div class="card">`))
	require.Equal(t, reversed, strings.Count(w.Body.String(), `class="reversed"`))
	require.Len(t, diagnostics(logs), reversed)
}

func TestIndexDefaultSpreadSize(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, config.DefaultSpreadSize, strings.Count(w.Body.String(), `<div class="card">`))
}

func TestIndexRejectsBadParams(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	for _, target := range []string{"/?seed=abc", "/?count=x", "/?count=100"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestReading(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	t.Run("draws cards", func(t *testing.T) {
		body := bytes.NewBufferString(`{"question":"What lies ahead?","count":5,"seed":7}`)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reading", body))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Question  string     `json:"question"`
			Seed      int64      `json:"seed"`
			Cards     []cardView `json:"cards"`
			Permalink string     `json:"permalink"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "What lies ahead?", resp.Question)
		require.Equal(t, int64(7), resp.Seed)
		require.Len(t, resp.Cards, 5)
		require.Equal(t, "http://example.com/?seed=7&count=5", resp.Permalink)

		for _, c := range resp.Cards {
			require.True(t, strings.HasPrefix(c.Image, "/deck/h750/"))
			require.Contains(t, c.HTML, `src="`+c.Image+`"`)
			require.Equal(t, c.Reversed, strings.Contains(c.HTML, `class="reversed"`))
		}
	})

	t.Run("uses generated seed", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reading", bytes.NewBufferString(`{"question":"?"}`)))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"seed":99`)
	})

	t.Run("question is required", func(t *testing.T) {
		for _, body := range []string{`{}`, `not json`} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/reading", bytes.NewBufferString(body)))
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.JSONEq(t, `{"error":"Question is required"}`, w.Body.String())
		}
	})
}

func TestCardInfo(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/card/minor_arcana.swords.king", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var info map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, "King of Swords", info["name"])
	require.Equal(t, "swords", info["suit"])
	require.Equal(t, "/deck/h750/minor_arcana/swords/king.png", info["image"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/card/minor_arcana.coins.king", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeckImagesAreServed(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/deck/h750/major_arcana/00.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestQR(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/qr?seed=7&size=128", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
