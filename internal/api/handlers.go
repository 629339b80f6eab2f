package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ptcgmeta/tracker/internal/api/response"
	"github.com/ptcgmeta/tracker/internal/pipeline"
)

// maxBatchSize caps one batch request; larger scrapes should page.
const maxBatchSize = 10000

// resolveRequest is the body of POST /api/v1/resolve. It mirrors one
// scraped placement row.
type resolveRequest pipeline.Placement

// batchRequest is the body of POST /api/v1/resolve/batch.
type batchRequest struct {
	Placements []pipeline.Placement `json:"placements"`
}

// handleResolve resolves a single placement row.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, fmt.Errorf("decode resolve request: %w", err))
		return
	}

	res := s.engine().normalizer.ResolveWithConfidence(req.SpriteURLs, req.RawLabel, req.Deck)
	response.Success(w, res)
}

// handleResolveBatch resolves a batch of placement rows, preserving
// input order in the response.
func (s *Server) handleResolveBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, fmt.Errorf("decode batch request: %w", err))
		return
	}
	if len(req.Placements) > maxBatchSize {
		response.BadRequest(w, fmt.Errorf("batch of %d exceeds limit of %d", len(req.Placements), maxBatchSize))
		return
	}

	batch := pipeline.NewBatchResolver(s.engine().normalizer, s.workers, s.logger)
	results, err := batch.ResolveAll(r.Context(), req.Placements)
	if err != nil {
		response.InternalError(w, fmt.Errorf("batch resolve: %w", err))
		return
	}

	response.Success(w, results)
}

// handleArchetypes lists the canonical archetype names the loaded
// knowledge base can produce.
func (s *Server) handleArchetypes(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, s.engine().base.Archetypes())
}
