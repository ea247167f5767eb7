package http

import (
	"net/http"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/service"
)

// AccountHandler serves one of the two ledgers; the kind is fixed at construction
type AccountHandler struct {
	svc  service.AccountService
	kind domain.AccountKind
}

func NewAccountHandler(svc service.AccountService, kind domain.AccountKind) *AccountHandler {
	return &AccountHandler{svc: svc, kind: kind}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AccountFilter{
		Status:   domain.AccountStatus(q.Get("status")),
		Category: q.Get("categoria"),
	}
	var err error
	if filter.From, err = queryDate(r, "data_inicio"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.To, err = queryDate(r, "data_fim"); err != nil {
		writeError(w, r, err)
		return
	}

	accounts, err := h.svc.ListAccounts(r.Context(), h.kind, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a domain.Account
	if err := decodeJSON(r, &a); err != nil {
		writeError(w, r, err)
		return
	}
	a.ID = 0
	a.Kind = h.kind
	if err := h.svc.CreateAccount(r.Context(), &a); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

type settleRequest struct {
	PaymentDate *domain.Date `json:"data_pagamento"`
}

// Settle marks the account paid (payables) or received (receivables)
func (h *AccountHandler) Settle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req settleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	a, err := h.svc.SettleAccount(r.Context(), h.kind, id, req.PaymentDate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteAccount(r.Context(), h.kind, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
