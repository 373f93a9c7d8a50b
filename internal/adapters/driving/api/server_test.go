package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-captions/internal/analysis"
	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/services"
	"github.com/custodia-labs/sercha-captions/internal/query"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, withVerses bool) *Server {
	t.Helper()
	ctx := context.Background()

	index := memory.NewIndexStore()
	for id, text := range map[string]string{
		"vid-1": "Gosto de sal na comida",
		"vid-2": "A salvação é importante",
	} {
		require.NoError(t, index.Put(ctx, &domain.IndexedDocument{
			ID: id, ContentText: text, Tokens: analysis.Tokenize(text), TokenVersion: analysis.CurrentVersion,
		}))
	}

	var verses *memory.VerseStore
	if withVerses {
		verses = memory.NewVerseStore(domain.VerseSchemaNormalized)
		text := "Vós sois o sal da terra"
		verses.Add(domain.VerseRecord{Version: "ARA", Book: 40, Chapter: 5, Verse: 13, Text: text, NormalizedText: analysis.Normalize(text)})
	}

	matcher, err := query.NewMatcher(0)
	require.NoError(t, err)

	ports := Ports{}
	if verses != nil {
		ports.Search = services.NewSearchService(index, verses, matcher, services.SearchConfig{DefaultVersion: "ARA"})
		ports.Library = services.NewLibraryService(index, verses)
	} else {
		ports.Search = services.NewSearchService(index, nil, matcher, services.SearchConfig{DefaultVersion: "ARA"})
		ports.Library = services.NewLibraryService(index, nil)
	}

	server, err := NewServer(ports, nil)
	require.NoError(t, err)
	return server
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestNewServer_RequiresSearch(t *testing.T) {
	_, err := NewServer(Ports{}, nil)
	assert.ErrorIs(t, err, ErrMissingSearchService)
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, false), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSearch_Subtitles(t *testing.T) {
	rec := get(t, newTestServer(t, false), "/v1/search?q=%27sal%27")

	require.Equal(t, http.StatusOK, rec.Code)
	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "vid-1", body.Results[0].DocumentID)
}

func TestSearch_EmptyResultsIsArray(t *testing.T) {
	rec := get(t, newTestServer(t, false), "/v1/search?q=pastor")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results":[],"count":0}`, rec.Body.String())
}

func TestSearch_Verses(t *testing.T) {
	rec := get(t, newTestServer(t, true), "/v1/search?q=sal&corpus=verses")

	require.Equal(t, http.StatusOK, rec.Code)
	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "40.5.13", body.Results[0].Reference)
	require.NotNil(t, body.Results[0].Verse)
	assert.Equal(t, "ARA", body.Results[0].Verse.Version)
}

func TestSearch_Errors(t *testing.T) {
	tests := []struct {
		name       string
		verses     bool
		target     string
		wantStatus int
		wantCode   string
	}{
		{"blank query", false, "/v1/search?q=++", http.StatusBadRequest, CodeInvalidInput},
		{"missing query", false, "/v1/search", http.StatusBadRequest, CodeInvalidInput},
		{"bad limit", false, "/v1/search?q=sal&limit=many", http.StatusBadRequest, CodeInvalidInput},
		{"unknown corpus", false, "/v1/search?q=sal&corpus=hymns", http.StatusBadRequest, CodeInvalidInput},
		{"no verse database", false, "/v1/search?q=sal&corpus=verses", http.StatusServiceUnavailable, CodeUnavailable},
		{"unknown version", true, "/v1/search?q=sal&corpus=verses&version=KJV", http.StatusNotFound, CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, newTestServer(t, tt.verses), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
		})
	}
}

func TestDocuments(t *testing.T) {
	s := newTestServer(t, false)

	rec := get(t, s, "/v1/documents")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":2`)

	rec = get(t, s, "/v1/documents/vid-2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A salvação é importante")

	rec = get(t, s, "/v1/documents/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestVersions(t *testing.T) {
	rec := get(t, newTestServer(t, true), "/v1/verses/versions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"versions":["ARA"]}`, rec.Body.String())

	rec = get(t, newTestServer(t, false), "/v1/verses/versions")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// failingSearch returns a fixed error.
type failingSearch struct{ err error }

func (f failingSearch) Search(context.Context, string, domain.SearchOptions) ([]domain.SearchResult, error) {
	return nil, f.err
}

func TestSearch_InternalErrorIsHidden(t *testing.T) {
	s, err := NewServer(Ports{Search: failingSearch{err: errors.New("database file is locked")}}, nil)
	require.NoError(t, err)

	rec := get(t, s, "/v1/search?q=sal")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeInternal, detail.Code)
	assert.Equal(t, "internal error", detail.Message)
}

func TestExtraHandlersAreMounted(t *testing.T) {
	extra := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "mounted "+r.URL.Path)
	})
	s, err := NewServer(Ports{Search: failingSearch{}}, map[string]http.Handler{"/mcp": extra})
	require.NoError(t, err)

	rec := get(t, s, "/mcp")
	assert.Equal(t, "mounted /mcp", rec.Body.String())
}

func TestClassify(t *testing.T) {
	status, code := classify(fmt.Errorf("%w: %w", domain.ErrSearchUnavailable, domain.ErrNotFound))
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, CodeUnavailable, code)

	status, _ = classify(fmt.Errorf("%w: schema", domain.ErrUnsupportedType))
	assert.Equal(t, http.StatusBadRequest, status)
}
