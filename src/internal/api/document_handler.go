package api

import (
	"net/http"

	"github.com/gorilla/mux"

	appdocument "github.com/inmolista/listing_crm/src/internal/application/document"
)

// ===========================
// DocumentHandler
// ===========================

// DocumentHandler 文件 HTTP 接口
type DocumentHandler struct {
	attach *appdocument.AttachDocumentUseCase
	verify *appdocument.VerifyDocumentUseCase
	list   *appdocument.ListDocumentsUseCase
	delete *appdocument.DeleteDocumentUseCase
}

// NewDocumentHandler 創建 handler 實例
func NewDocumentHandler(
	attach *appdocument.AttachDocumentUseCase,
	verify *appdocument.VerifyDocumentUseCase,
	list *appdocument.ListDocumentsUseCase,
	delete_ *appdocument.DeleteDocumentUseCase,
) *DocumentHandler {
	return &DocumentHandler{
		attach: attach,
		verify: verify,
		list:   list,
		delete: delete_,
	}
}

// attachDocumentRequest POST /properties/{id}/documents 請求體
type attachDocumentRequest struct {
	Type       string `json:"type"`
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
	FileName   string `json:"file_name"`
}

// Attach POST /properties/{id}/documents
func (h *DocumentHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req attachDocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.attach.Execute(r.Context(), appdocument.AttachDocumentCommand{
		PropertyID: mux.Vars(r)["id"],
		Type:       req.Type,
		StorageKey: req.StorageKey,
		URL:        req.URL,
		FileName:   req.FileName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// List GET /properties/{id}/documents
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.list.Execute(r.Context(), appdocument.ListDocumentsQuery{
		PropertyID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// verifyDocumentRequest POST /documents/{id}/verify 請求體
type verifyDocumentRequest struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note"`
}

// Verify POST /documents/{id}/verify
func (h *DocumentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyDocumentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.verify.Execute(r.Context(), appdocument.VerifyDocumentCommand{
		DocumentID: mux.Vars(r)["id"],
		Approve:    req.Approve,
		Note:       req.Note,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Delete DELETE /documents/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.delete.Execute(r.Context(), appdocument.DeleteDocumentCommand{
		DocumentID: mux.Vars(r)["id"],
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
