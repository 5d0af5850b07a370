// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-survey/middleware"
	"github.com/danielhkuo/quickly-survey/models"
	"github.com/danielhkuo/quickly-survey/survey"
)

type SurveyHandler struct {
	svc *survey.Service
}

func NewSurveyHandler(svc *survey.Service) *SurveyHandler {
	return &SurveyHandler{svc: svc}
}

// Submit handles POST /api/respostas
func (h *SurveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	sub, err := h.svc.Ingest(r.Context(), req)

	var validationErr *survey.ValidationError
	var storageErr *survey.StorageError
	switch {
	case errors.As(err, &validationErr):
		middleware.ErrorResponse(w, http.StatusBadRequest, validationErr.Message)
		return
	case errors.As(err, &storageErr):
		slog.Error("failed to save submission", "error", err, "grupo", req.Group)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	case err != nil:
		slog.Error("unexpected ingestion error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		ID:      sub.ID,
		Message: "Submission saved successfully",
	})
}

// GetSummary handles GET /api/medias
// Returns 404 until the first submission has been stored
func (h *SurveyHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.Summary(r.Context())
	if errors.Is(err, survey.ErrNoSummary) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No summary available")
		return
	}
	if err != nil {
		slog.Error("failed to load summary", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{Dominant: snapshot})
}
