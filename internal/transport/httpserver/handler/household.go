package handler

import (
	"errors"
	"net/http"

	householddomain "github.com/dijana-z/organize-me/internal/domain/household"
)

type householdRequest struct {
	Name string `json:"name"`
}

type householdResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func toHouseholdResponse(household *householddomain.Household) householdResponse {
	return householdResponse{ID: household.ID, Name: household.Name}
}

func (h *Handlers) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.Households.ListForCaller(r.Context(), user.HouseholdID)
	if err != nil {
		h.log.InternalError("households.list: query failed", err, "user_id", user.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]householdResponse, 0, len(items))
	for i := range items {
		response = append(response, toHouseholdResponse(&items[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.Households.Create(r.Context(), user.ID, user.HouseholdID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, householddomain.ErrNameRequired):
			h.log.BusinessError("households.create: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, householddomain.ErrNameTaken):
			h.log.BusinessError("households.create: name taken", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "already_exists", "household name already taken")
		default:
			h.log.InternalError("households.create: create failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toHouseholdResponse(result))
}

func (h *Handlers) GetHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.Households.Get(r.Context(), user.HouseholdID, id)
	if err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("households.get: not found", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("households.get: query failed", err, "user_id", user.ID, "household_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toHouseholdResponse(result))
}

func (h *Handlers) UpdateHousehold(w http.ResponseWriter, r *http.Request) {
	var req householdRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.Households.Rename(r.Context(), user.HouseholdID, id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, householddomain.ErrNameRequired):
			h.log.BusinessError("households.update: invalid input", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, householddomain.ErrNameTaken):
			h.log.BusinessError("households.update: name taken", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusBadRequest, "already_exists", "household name already taken")
		case errors.Is(err, householddomain.ErrHouseholdNotFound):
			h.log.BusinessError("households.update: not found", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
		default:
			h.log.InternalError("households.update: update failed", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toHouseholdResponse(result))
}

func (h *Handlers) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Households.Delete(r.Context(), user.HouseholdID, id); err != nil {
		if errors.Is(err, householddomain.ErrHouseholdNotFound) {
			h.log.BusinessError("households.delete: not found", err, "user_id", user.ID, "household_id", id)
			writeError(w, http.StatusNotFound, "household_not_found", "household not found")
			return
		}
		h.log.InternalError("households.delete: delete failed", err, "user_id", user.ID, "household_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
