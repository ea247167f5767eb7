package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/security"
	"star-gestao-backend/internal/storage"

	"github.com/gorilla/mux"
)

// ReceiptHandler serves the upload and download links handed out for installment receipts
type ReceiptHandler struct {
	store        storage.Storage
	tokens       security.TokenManager
	maxBytes     int64
	allowedTypes map[string]bool
}

func NewReceiptHandler(store storage.Storage, tokens security.TokenManager, maxBytes int64, allowedTypes []string) *ReceiptHandler {
	allowed := make(map[string]bool, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(t)] = true
	}
	return &ReceiptHandler{
		store:        store,
		tokens:       tokens,
		maxBytes:     maxBytes,
		allowedTypes: allowed,
	}
}

// authorize checks that the path token is a transfer token bound to the key query parameter
func (h *ReceiptHandler) authorize(r *http.Request) (string, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		return "", false
	}
	claims, err := h.tokens.ValidateToken(mux.Vars(r)["token"])
	if err != nil || claims.Type != security.TokenTypeTransfer || claims.Key != key {
		return "", false
	}
	return key, true
}

func (h *ReceiptHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key, ok := h.authorize(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "link de envio inválido ou expirado")
		return
	}

	contentType := strings.ToLower(strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0]))
	if len(h.allowedTypes) > 0 && !h.allowedTypes[contentType] {
		writeDetail(w, http.StatusBadRequest, "tipo de arquivo não permitido")
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := h.store.SaveFile(key, body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = h.store.DeleteFile(r.Context(), key)
			writeDetail(w, http.StatusRequestEntityTooLarge, "arquivo maior que o limite permitido")
			return
		}
		writeError(w, r, err)
		return
	}

	logger.Info("Receipt stored", "key", key)
	w.WriteHeader(http.StatusOK)
}

func (h *ReceiptHandler) Download(w http.ResponseWriter, r *http.Request) {
	key, ok := h.authorize(r)
	if !ok {
		writeDetail(w, http.StatusUnauthorized, "link de download inválido ou expirado")
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		contentType = "application/pdf"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		logger.Warn("Receipt download interrupted", "key", key, "error", err)
	}
}
