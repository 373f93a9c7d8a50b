package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

// SearchRequest holds the query string of GET /v1/search.
type SearchRequest struct {
	Query   string `form:"q"`
	Corpus  string `form:"corpus"`
	Version string `form:"version"`
	Limit   int    `form:"limit"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Results []domain.SearchResult `json:"results"`
	Count   int                   `json:"count"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeError(c, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}
	corpus, err := domain.ParseCorpus(req.Corpus)
	if err != nil {
		writeError(c, err)
		return
	}

	results, err := s.ports.Search.Search(c.Request.Context(), req.Query, domain.SearchOptions{
		Corpus:  corpus,
		Version: req.Version,
		Limit:   req.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	c.JSON(http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}

func (s *Server) handleDocuments(c *gin.Context) {
	if s.ports.Library == nil {
		writeError(c, domain.ErrSearchUnavailable)
		return
	}
	docs, err := s.ports.Library.Documents(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

func (s *Server) handleDocument(c *gin.Context) {
	if s.ports.Library == nil {
		writeError(c, domain.ErrSearchUnavailable)
		return
	}
	doc, err := s.ports.Library.Document(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"document": doc.Summary(),
		"text":     doc.ContentText,
		"tokens":   doc.Tokens,
	})
}

func (s *Server) handleVersions(c *gin.Context) {
	if s.ports.Library == nil {
		writeError(c, domain.ErrSearchUnavailable)
		return
	}
	versions, err := s.ports.Library.VerseVersions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions})
}
