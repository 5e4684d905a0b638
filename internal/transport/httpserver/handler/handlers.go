package handler

import (
	"net/http"

	"github.com/dijana-z/organize-me/internal/auth"
	grocerydomain "github.com/dijana-z/organize-me/internal/domain/grocery"
	householddomain "github.com/dijana-z/organize-me/internal/domain/household"
	userdomain "github.com/dijana-z/organize-me/internal/domain/user"
	"github.com/dijana-z/organize-me/internal/transport/httpserver/middleware"
	"github.com/dijana-z/organize-me/pkg/logger"
)

type Handlers struct {
	Users      *userdomain.Service
	Households *householddomain.Service
	Groceries  *grocerydomain.Service
	Tokens     *auth.JWTManager

	log logger.Logger
}

func New(users *userdomain.Service, households *householddomain.Service, groceries *grocerydomain.Service, tokens *auth.JWTManager, log logger.Logger) *Handlers {
	return &Handlers{
		Users:      users,
		Households: households,
		Groceries:  groceries,
		Tokens:     tokens,
		log:        log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requireUser pulls the authenticated account out of the request context.
func (h *Handlers) requireUser(w http.ResponseWriter, r *http.Request) (*userdomain.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return nil, false
	}
	return user, true
}

// requireHousehold additionally demands a linked household. A user without
// one gets a definite 404 instead of a fault; spec-wise their data simply
// does not exist.
func (h *Handlers) requireHousehold(w http.ResponseWriter, r *http.Request) (*userdomain.User, uint, bool) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return nil, 0, false
	}
	if user.HouseholdID == nil {
		h.log.Warn("scope: user has no household", "user_id", user.ID, "path", r.URL.Path)
		writeError(w, http.StatusNotFound, "household_not_found", "household not found")
		return nil, 0, false
	}
	return user, *user.HouseholdID, true
}
