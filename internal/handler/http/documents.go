package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeAuthError(w, detailNoToken)
		return
	}

	var request models.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	document := models.Document{
		Title:   request.Title,
		Content: request.Content,
		UserID:  user.UserID,
	}

	savedDocument, err := h.services.DocumentService.CreateDocument(ctx, document)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid document data provided")
			writeError(w, msgTitleContentRequired, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during document creation")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, savedDocument, http.StatusCreated)
}

func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeAuthError(w, detailNoToken)
		return
	}

	documents, err := h.services.DocumentService.ListDocuments(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("document listing failed")
		writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// an owner with no documents gets an empty JSON array, not null
	if documents == nil {
		documents = []models.Document{}
	}

	utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) deleteDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no authenticated user in context")
		writeAuthError(w, detailNoToken)
		return
	}

	// a non-numeric id cannot match any document, so it is reported the same
	// way as a missing one
	documentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("unparsable document id")
		writeError(w, msgDocumentNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.DocumentService.DeleteDocument(ctx, user.UserID, documentID); err != nil {
		switch {
		case errors.Is(err, store.ErrDocumentNotFound):
			log.Err(err).
				Int64("user_id", user.UserID).
				Int64("document_id", documentID).
				Msg("document not found")
			writeError(w, msgDocumentNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during document deletion")
			writeError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgDocumentDeleted}, http.StatusOK)
}
