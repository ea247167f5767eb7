package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/logger"
	"star-gestao-backend/internal/repository"
	"star-gestao-backend/internal/service"
	"star-gestao-backend/internal/storage"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// errorResponse is the only error shape the API returns
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// errorStatus maps service and repository errors to a status code and a
// message safe to show to the user
func errorStatus(err error) (int, string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrInstallmentNotFound), errors.Is(err, service.ErrUnknownCategory):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, storage.ErrFileNotFound):
		return http.StatusNotFound, "registro não encontrado"
	case errors.Is(err, repository.ErrVersionConflict):
		return http.StatusConflict, "o registro foi alterado por outra operação; recarregue e tente novamente"
	case errors.Is(err, repository.ErrDuplicate):
		return http.StatusConflict, "já existe um registro com estes dados"
	case errors.Is(err, repository.ErrInUse):
		return http.StatusConflict, "o registro está em uso e não pode ser excluído"
	case errors.Is(err, repository.ErrInvalidRef):
		return http.StatusBadRequest, "referência a um registro inexistente"
	case errors.Is(err, service.ErrInvalidAccountKind), errors.Is(err, storage.ErrInvalidKey):
		return http.StatusBadRequest, err.Error()
	}
	return http.StatusInternalServerError, "erro interno do servidor"
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		logger.Debug("Request rejected", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}
	writeDetail(w, status, detail)
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return domain.NewValidationError("não foi possível ler o corpo da requisição")
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.NewValidationError("JSON inválido: %v", err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("identificador inválido: %q", raw)
	}
	return int32(id), nil
}

func queryDate(r *http.Request, name string) (*domain.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, domain.NewValidationError("%s: %v", name, err)
	}
	return &d, nil
}
