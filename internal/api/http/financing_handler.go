package http

import (
	"net/http"
	"strconv"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/service"
)

type FinancingHandler struct {
	svc service.FinancingService
}

func NewFinancingHandler(svc service.FinancingService) *FinancingHandler {
	return &FinancingHandler{svc: svc}
}

func (h *FinancingHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListFinancings(r.Context(), domain.FinancingStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Financing{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *FinancingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.FinancingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.CreateFinancing(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

func (h *FinancingHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var in domain.FinancingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	sim, err := h.svc.Simulate(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

func (h *FinancingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.GetFinancing(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FinancingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var in domain.FinancingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.UpdateFinancing(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FinancingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeleteFinancing(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FinancingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.CancelFinancing(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// installmentIDs reads the contract and installment ids from the path
func installmentIDs(r *http.Request) (int32, int32, error) {
	financingID, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}
	installmentID, err := pathID(r, "pid")
	if err != nil {
		return 0, 0, err
	}
	return financingID, installmentID, nil
}

func (h *FinancingHandler) PayInstallment(w http.ResponseWriter, r *http.Request) {
	financingID, installmentID, err := installmentIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var p domain.PaymentInput
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.RecordPayment(r.Context(), financingID, installmentID, p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FinancingHandler) UpdateInstallment(w http.ResponseWriter, r *http.Request) {
	financingID, installmentID, err := installmentIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var patch domain.InstallmentPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}
	f, err := h.svc.UpdateInstallment(r.Context(), financingID, installmentID, patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

type receiptRequest struct {
	Filename    string `json:"nome_arquivo"`
	ContentType string `json:"content_type"`
}

func (h *FinancingHandler) PrepareReceipt(w http.ResponseWriter, r *http.Request) {
	financingID, installmentID, err := installmentIDs(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req receiptRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	upload, err := h.svc.PrepareReceiptUpload(r.Context(), financingID, installmentID, req.Filename, req.ContentType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, upload)
}

// PresentValue discounts the remaining installments at CDI (usar_cdi=true)
// or SELIC. The body is null when nothing remains to be paid.
func (h *FinancingHandler) PresentValue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	source := domain.RateSourceSELIC
	if raw := r.URL.Query().Get("usar_cdi"); raw != "" {
		useCDI, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, domain.NewValidationError("usar_cdi deve ser true ou false"))
			return
		}
		if useCDI {
			source = domain.RateSourceCDI
		}
	}
	asOf := domain.Today()
	if d, err := queryDate(r, "data_referencia"); err != nil {
		writeError(w, r, err)
		return
	} else if d != nil {
		asOf = *d
	}

	pv, err := h.svc.PresentValue(r.Context(), id, source, asOf)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pv)
}
