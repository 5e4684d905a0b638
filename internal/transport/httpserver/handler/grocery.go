package handler

import (
	"errors"
	"net/http"

	grocerydomain "github.com/dijana-z/organize-me/internal/domain/grocery"
)

type createGroceryRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

type updateGroceryRequest struct {
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
}

type groceryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func toGroceryResponse(item *grocerydomain.Grocery) groceryResponse {
	return groceryResponse{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
	}
}

func toGroceryListResponse(items []grocerydomain.Grocery) []groceryResponse {
	response := make([]groceryResponse, 0, len(items))
	for i := range items {
		response = append(response, toGroceryResponse(&items[i]))
	}
	return response
}

func (h *Handlers) writeGroceryError(w http.ResponseWriter, operation string, err error, args ...any) {
	switch {
	case errors.Is(err, grocerydomain.ErrNameRequired),
		errors.Is(err, grocerydomain.ErrQuantityNegative):
		h.log.BusinessError(operation+": invalid input", err, args...)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, grocerydomain.ErrGroceryNotFound):
		h.log.BusinessError(operation+": not found", err, args...)
		writeError(w, http.StatusNotFound, "grocery_not_found", "grocery not found")
	default:
		h.log.InternalError(operation+": failed", err, args...)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

func (h *Handlers) ListGroceries(w http.ResponseWriter, r *http.Request) {
	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	items, err := h.Groceries.List(r.Context(), householdID)
	if err != nil {
		h.writeGroceryError(w, "groceries.list", err, "user_id", user.ID, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusOK, toGroceryListResponse(items))
}

func (h *Handlers) CreateGrocery(w http.ResponseWriter, r *http.Request) {
	var req createGroceryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "quantity is required")
		return
	}

	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	result, err := h.Groceries.Create(r.Context(), householdID, grocerydomain.CreateInput{
		Name:     req.Name,
		Quantity: *req.Quantity,
	})
	if err != nil {
		h.writeGroceryError(w, "groceries.create", err, "user_id", user.ID, "household_id", householdID)
		return
	}

	writeJSON(w, http.StatusCreated, toGroceryResponse(result))
}

func (h *Handlers) GetGrocery(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	result, err := h.Groceries.Get(r.Context(), householdID, id)
	if err != nil {
		h.writeGroceryError(w, "groceries.get", err, "user_id", user.ID, "household_id", householdID, "grocery_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toGroceryResponse(result))
}

func (h *Handlers) UpdateGrocery(w http.ResponseWriter, r *http.Request) {
	var req updateGroceryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if r.Method == http.MethodPut && (req.Name == nil || req.Quantity == nil) {
		writeError(w, http.StatusBadRequest, "invalid_request", "name and quantity are required")
		return
	}
	if req.Name == nil && req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	result, err := h.Groceries.Update(r.Context(), householdID, id, grocerydomain.UpdateInput{
		Name:     req.Name,
		Quantity: req.Quantity,
	})
	if err != nil {
		h.writeGroceryError(w, "groceries.update", err, "user_id", user.ID, "household_id", householdID, "grocery_id", id)
		return
	}

	writeJSON(w, http.StatusOK, toGroceryResponse(result))
}

func (h *Handlers) DeleteGrocery(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	if err := h.Groceries.Delete(r.Context(), householdID, id); err != nil {
		h.writeGroceryError(w, "groceries.delete", err, "user_id", user.ID, "household_id", householdID, "grocery_id", id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
