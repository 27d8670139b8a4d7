package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/search"
	"github.com/jonathan/impact-search/internal/taxonomy"
	"github.com/jonathan/impact-search/internal/types"
	"github.com/jonathan/impact-search/internal/validation"
)

// queryTypeMessage rejects a missing or non-string query
var queryTypeMessage = fmt.Sprintf("Query must be a string of at least %d characters", validation.MinQueryLength)

// searchRequest keeps query untyped so non-string values can be rejected as 400
type searchRequest struct {
	Query any `json:"query"`
}

// searchResponse is the success envelope for POST /api/search
type searchResponse struct {
	Success bool                `json:"success"`
	Data    types.SearchFilters `json:"data"`
	Method  search.Method       `json:"method"`
}

// vocabularyResponse is the body of GET /api/search/vocabulary
type vocabularyResponse struct {
	Success bool           `json:"success"`
	Data    vocabularyData `json:"data"`
}

type vocabularyData struct {
	Categories     []taxonomy.SkillCategory `json:"categories"`
	Causes         []taxonomy.Cause         `json:"causes"`
	WorkModes      []types.WorkMode         `json:"workModes"`
	VolunteerTypes []types.VolunteerType    `json:"volunteerTypes"`
}

// healthResponse is the body of GET /health
type healthResponse struct {
	Status   string `json:"status"`
	LLM      bool   `json:"llm"`
	Database bool   `json:"database"`
}

// handleSearch compiles a free-text query into search filters
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, clientMessage(errBodyTooLarge))
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	query, ok := req.Query.(string)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, queryTypeMessage)
		return
	}

	result, err := s.compiler.Compile(r.Context(), query)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("Search compilation failed", zap.Error(err))
		}
		s.errorResponse(w, status, clientMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, searchResponse{
		Success: true,
		Data:    result.Filters,
		Method:  result.Method,
	})
}

// handleVocabulary returns the closed vocabularies filters are restricted to
func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, vocabularyResponse{
		Success: true,
		Data: vocabularyData{
			Categories:     taxonomy.Categories(),
			Causes:         taxonomy.Causes(),
			WorkModes:      types.WorkModes,
			VolunteerTypes: types.VolunteerTypes,
		},
	})
}

// handleHealth reports which optional dependencies are available
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", LLM: s.compiler.AIEnabled()}
	if s.database != nil {
		if err := s.database.Ping(r.Context()); err != nil {
			s.logger.Warn("Database ping failed", zap.Error(err))
		} else {
			resp.Database = true
		}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
