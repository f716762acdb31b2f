package importer

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/expense-tracker/internal/transport"
	"github.com/frahmantamala/expense-tracker/pkg/logger"
)

type ImporterAPI interface {
	Import(userID string, data []byte, filename string) (*Result, error)
}

type Handler struct {
	*transport.BaseHandler
	Importer ImporterAPI
	maxBytes int64
}

func NewHandler(imp ImporterAPI, maxBytes int64) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Importer:    imp,
		maxBytes:    maxBytes,
	}
}

// BulkUpload ingests a multipart spreadsheet upload (form field "file").
func (h *Handler) BulkUpload(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.UserID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Error("BulkUpload: missing file", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusBadRequest, "file upload is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Error("BulkUpload: failed to read upload", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := h.Importer.Import(userID, data, header.Filename)
	if err != nil {
		h.Logger.Error("BulkUpload: import failed", "error", err, "user_id", userID, "filename", header.Filename)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("BulkUpload: import finished",
		"user_id", userID,
		"filename", header.Filename,
		"submitted", result.Submitted,
		"failed", result.Failed)

	h.WriteJSON(w, http.StatusOK, result)
}
