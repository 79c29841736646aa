package api

import (
	"net/http"

	"github.com/gorilla/mux"

	appmedia "github.com/inmolista/listing_crm/src/internal/application/media"
)

// ===========================
// MediaHandler
// ===========================

// MediaHandler 媒體 HTTP 接口
type MediaHandler struct {
	requestUpload *appmedia.RequestMediaUploadUseCase
	attach        *appmedia.AttachMediaUseCase
	reorder       *appmedia.ReorderMediaUseCase
	setCover      *appmedia.SetCoverUseCase
	remove        *appmedia.RemoveMediaUseCase
}

// NewMediaHandler 創建 handler 實例
func NewMediaHandler(
	requestUpload *appmedia.RequestMediaUploadUseCase,
	attach *appmedia.AttachMediaUseCase,
	reorder *appmedia.ReorderMediaUseCase,
	setCover *appmedia.SetCoverUseCase,
	remove *appmedia.RemoveMediaUseCase,
) *MediaHandler {
	return &MediaHandler{
		requestUpload: requestUpload,
		attach:        attach,
		reorder:       reorder,
		setCover:      setCover,
		remove:        remove,
	}
}

// requestUploadRequest POST /properties/{id}/media/uploads 請求體
type requestUploadRequest struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// RequestUpload POST /properties/{id}/media/uploads
func (h *MediaHandler) RequestUpload(w http.ResponseWriter, r *http.Request) {
	var req requestUploadRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.requestUpload.Execute(r.Context(), appmedia.RequestMediaUploadCommand{
		PropertyID:  mux.Vars(r)["id"],
		FileName:    req.FileName,
		ContentType: req.ContentType,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// attachMediaRequest POST /properties/{id}/media 請求體
type attachMediaRequest struct {
	Type       string `json:"type"`
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
}

// Attach POST /properties/{id}/media
func (h *MediaHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req attachMediaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.attach.Execute(r.Context(), appmedia.AttachMediaCommand{
		PropertyID: mux.Vars(r)["id"],
		Type:       req.Type,
		StorageKey: req.StorageKey,
		URL:        req.URL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// reorderMediaRequest PUT /properties/{id}/media/order 請求體
type reorderMediaRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// Reorder PUT /properties/{id}/media/order
func (h *MediaHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderMediaRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.reorder.Execute(r.Context(), appmedia.ReorderMediaCommand{
		PropertyID: mux.Vars(r)["id"],
		OrderedIDs: req.OrderedIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// setCoverRequest POST /properties/{id}/media/cover 請求體
type setCoverRequest struct {
	MediaID string `json:"media_id"`
}

// SetCover POST /properties/{id}/media/cover
func (h *MediaHandler) SetCover(w http.ResponseWriter, r *http.Request) {
	var req setCoverRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.setCover.Execute(r.Context(), appmedia.SetCoverCommand{
		PropertyID: mux.Vars(r)["id"],
		MediaID:    req.MediaID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Remove DELETE /media/{id}
func (h *MediaHandler) Remove(w http.ResponseWriter, r *http.Request) {
	err := h.remove.Execute(r.Context(), appmedia.RemoveMediaCommand{
		MediaID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
