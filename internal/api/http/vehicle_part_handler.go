package http

import (
	"net/http"
	"strconv"

	"star-gestao-backend/internal/domain"
	"star-gestao-backend/internal/service"
)

type VehiclePartHandler struct {
	svc service.VehiclePartService
}

func NewVehiclePartHandler(svc service.VehiclePartService) *VehiclePartHandler {
	return &VehiclePartHandler{svc: svc}
}

func (h *VehiclePartHandler) List(w http.ResponseWriter, r *http.Request) {
	var vehicleID *int32
	if raw := r.URL.Query().Get("carro_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, r, domain.NewValidationError("carro_id inválido: %q", raw))
			return
		}
		v := int32(id)
		vehicleID = &v
	}
	parts, err := h.svc.ListParts(r.Context(), vehicleID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if parts == nil {
		parts = []domain.VehiclePart{}
	}
	writeJSON(w, http.StatusOK, parts)
}

func (h *VehiclePartHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.VehiclePart
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	p.ID = 0
	if err := h.svc.CreatePart(r.Context(), &p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *VehiclePartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	p, err := h.svc.GetPart(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *VehiclePartHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var p domain.VehiclePart
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	p.ID = id
	if err := h.svc.UpdatePart(r.Context(), &p); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *VehiclePartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.svc.DeletePart(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
