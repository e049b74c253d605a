package handlers

import (
	"encoding/json"
	"net/http"
)

type signupRequest struct {
	Username  string `json:"username" validate:"required"`
	Telephone string `json:"telephone" validate:"required"`
}

// SignupCreate registers a supporter account from a username/phone pair.
func (a *App) SignupCreate(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "Requête JSON invalide.")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "Username et téléphone requis.")
		return
	}

	if _, err := a.Signup.RegisterUser(r.Context(), req.Username, req.Telephone); err != nil {
		a.serviceError(w, err)
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"success": true})
}
