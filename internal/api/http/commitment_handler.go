package http

import (
	"net/http"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/service"
)

type CommitmentHandler struct {
	svc service.CommitmentService
}

func NewCommitmentHandler(svc service.CommitmentService) *CommitmentHandler {
	return &CommitmentHandler{svc: svc}
}

func (h *CommitmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCommitments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Commitment{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CommitmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var c domain.Commitment
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = 0
	if err := h.svc.CreateCommitment(r.Context(), &c); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CommitmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := h.svc.GetCommitment(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CommitmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var c domain.Commitment
	if err := decodeJSON(r, &c); err != nil {
		writeError(w, r, err)
		return
	}
	c.ID = id
	if err := h.svc.UpdateCommitment(r.Context(), &c); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CommitmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteCommitment(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CommitmentHandler) Availability(w http.ResponseWriter, r *http.Request) {
	var q domain.AvailabilityQuery
	if err := decodeJSON(r, &q); err != nil {
		writeError(w, r, err)
		return
	}
	result, err := h.svc.CheckAvailability(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
