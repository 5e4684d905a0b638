package handler

import (
	"net/http"

	grocerydomain "github.com/dijana-z/organize-me/internal/domain/grocery"
)

// The grocery-list and shopping-list endpoints are the same two operations
// bound against different membership collections: list what the caller's
// household filed there, or create an item and file it in one step.

func (h *Handlers) GetGroceryList(w http.ResponseWriter, r *http.Request) {
	h.listView(w, r, grocerydomain.GroceryList)
}

func (h *Handlers) CreateGroceryListItem(w http.ResponseWriter, r *http.Request) {
	h.createInList(w, r, grocerydomain.GroceryList)
}

func (h *Handlers) GetShoppingList(w http.ResponseWriter, r *http.Request) {
	h.listView(w, r, grocerydomain.ShoppingList)
}

func (h *Handlers) CreateShoppingListItem(w http.ResponseWriter, r *http.Request) {
	h.createInList(w, r, grocerydomain.ShoppingList)
}

func (h *Handlers) listView(w http.ResponseWriter, r *http.Request, list grocerydomain.List) {
	user, householdID, ok := h.requireHousehold(w, r)
	if !ok {
		return
	}

	items, err := h.Groceries.ListView(r.Context(), householdID, list)
	if err != nil {
		h.writeGroceryError(w, "lists.view", err, "user_id", user.ID, "household_id", householdID, "list", string(list))
		return
	}

	writeJSON(w, http.StatusOK, toGroceryListResponse(items))
}

func (h *Handlers) createInList(w http.ResponseWriter, r *http.Request, list grocerydomain.List) {
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

	result, err := h.Groceries.CreateInList(r.Context(), householdID, list, grocerydomain.CreateInput{
		Name:     req.Name,
		Quantity: *req.Quantity,
	})
	if err != nil {
		h.writeGroceryError(w, "lists.create", err, "user_id", user.ID, "household_id", householdID, "list", string(list))
		return
	}

	writeJSON(w, http.StatusCreated, toGroceryResponse(result))
}
