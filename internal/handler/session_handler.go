package handler

import (
	"net/http"

	"cloudbox/internal/domain"
	"cloudbox/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
}

func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Current(r.Context())
	if err != nil {
		writeError(w, r, "Failed to get session", err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	session, err := h.sessionService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, "Failed to log in", err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *SessionHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	session, err := h.sessionService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, "Failed to sign up", err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Logout(r.Context()); err != nil {
		writeError(w, r, "Failed to log out", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Username string `json:"username"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "Invalid request body", err)
		return
	}

	user, err := h.sessionService.UpdateProfile(r.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		writeError(w, r, "Failed to update profile", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// SetTheme сохраняет тему, пустое тело или пустая тема переключает текущую
func (h *SessionHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme domain.Theme `json:"theme"`
	}
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, r, "Invalid request body", err)
			return
		}
	}

	prefs, err := h.sessionService.SetTheme(r.Context(), req.Theme)
	if err != nil {
		writeError(w, r, "Failed to update theme", err)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}
