package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cryptbox/cryptbox/internal/app"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/utils"
	"github.com/cryptbox/cryptbox/models"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.upload").Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	stored, err := h.services.FileService.UploadFile(ctx, models.EncryptedFile{
		FileID:   req.FileID,
		UserID:   userID,
		Body:     req.Body,
		Filename: req.Filename,
		Metadata: req.Metadata,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Str("file_id", req.FileID).Msg("error uploading file")
		http.Error(w, messageFromStatus(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, stored, http.StatusCreated)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.download").Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	fileID := chi.URLParam(r, "fileID")

	file, err := h.services.FileService.DownloadFile(ctx, userID, fileID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Str("file_id", fileID).Msg("error downloading file")
		http.Error(w, messageFromStatus(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, file, http.StatusOK)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.list").Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	listings, err := h.services.FileService.ListFiles(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.list").Msg("error listing files")
		http.Error(w, messageFromStatus(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.ListResponse{Files: listings}, http.StatusOK)
}

func (h *Handler) deleteFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteFile").Msg("no user ID in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	fileID := chi.URLParam(r, "fileID")

	if err := h.services.FileService.DeleteFile(ctx, userID, fileID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFile").Str("file_id", fileID).Msg("error deleting file")
		http.Error(w, messageFromStatus(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// messageFromStatus picks the response body wording for a mapped status.
func messageFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return app.MsgInvalidDataProvided
	case http.StatusUnauthorized:
		return app.MsgInvalidLoginPassword
	case http.StatusNotFound:
		return app.MsgFileNotFound
	case http.StatusConflict:
		return app.MsgFileAlreadyExists
	default:
		return app.MsgInternalServerError
	}
}
