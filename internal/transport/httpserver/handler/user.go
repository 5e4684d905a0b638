package handler

import (
	"errors"
	"net/http"

	userdomain "github.com/dijana-z/organize-me/internal/domain/user"
)

type createUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Household string `json:"household"`
}

type createTokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

type userResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	HouseholdID *uint  `json:"household_id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func toUserResponse(user *userdomain.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		HouseholdID: user.HouseholdID,
	}
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	result, err := h.Users.Register(r.Context(), userdomain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Household: req.Household,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrEmailRequired),
			errors.Is(err, userdomain.ErrEmailInvalid),
			errors.Is(err, userdomain.ErrPasswordTooShort):
			h.log.BusinessError("users.create: invalid input", err)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, userdomain.ErrEmailTaken):
			h.log.BusinessError("users.create: email taken", err)
			writeError(w, http.StatusBadRequest, "already_exists", "email already registered")
		default:
			h.log.InternalError("users.create: register failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(result))
}

func (h *Handlers) CreateToken(w http.ResponseWriter, r *http.Request) {
	var req createTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	found, err := h.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		// 400 rather than 401: the caller is not presenting a token yet.
		h.log.BusinessError("users.token: authentication failed", err)
		writeError(w, http.StatusBadRequest, "invalid_credentials", "invalid email or password")
		return
	}

	token, err := h.Tokens.Generate(found.ID, found.Email)
	if err != nil {
		h.log.InternalError("users.token: token generation failed", err, "user_id", found.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.Email == nil && req.Name == nil && req.Password == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "no fields to update")
		return
	}

	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	result, err := h.Users.Update(r.Context(), user.ID, userdomain.UpdateInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrEmailRequired),
			errors.Is(err, userdomain.ErrEmailInvalid),
			errors.Is(err, userdomain.ErrPasswordTooShort):
			h.log.BusinessError("users.update_me: invalid input", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		case errors.Is(err, userdomain.ErrEmailTaken):
			h.log.BusinessError("users.update_me: email taken", err, "user_id", user.ID)
			writeError(w, http.StatusBadRequest, "already_exists", "email already registered")
		case errors.Is(err, userdomain.ErrUserNotFound):
			h.log.BusinessError("users.update_me: user not found", err, "user_id", user.ID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		default:
			h.log.InternalError("users.update_me: update failed", err, "user_id", user.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(result))
}
