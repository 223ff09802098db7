package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/LucasMartinsVieira/toodoo/internal/application/auth"
	"github.com/LucasMartinsVieira/toodoo/internal/domain"
	"github.com/LucasMartinsVieira/toodoo/internal/infrastructure/http/middleware"
)

type AuthHandler struct {
	register *auth.Register
	login    *auth.Login
	profile  *auth.Profile
	update   *auth.Update
	remove   *auth.Remove
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, profile *auth.Profile, update *auth.Update, remove *auth.Remove, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		profile:  profile,
		update:   update,
		remove:   remove,
		validate: validator.New(),
		log:      log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name" validate:"required,max=63"`
		Email    string `json:"email" validate:"required,email,max=128"`
		Password string `json:"password" validate:"required,min=3,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	body.Name = SanitizeName(body.Name)
	body.Email = SanitizeEmail(body.Email)
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		writeDomainErr(w, h.log, err)
		return
	}
	AuditLog(h.log, r, "register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, tokenResponse{AccessToken: result.Token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=128"`
		Password string `json:"password" validate:"required,min=3,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	body.Email = SanitizeEmail(body.Email)
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		writeDomainErr(w, h.log, err)
		return
	}
	AuditLog(h.log, r, "login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: result.Token})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	result, err := h.profile.Execute(r.Context(), id)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{ID: result.ID, Name: result.Name, Email: result.Email})
}

func (h *AuthHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	var body struct {
		Name     *string `json:"name" validate:"omitempty,min=1,max=63"`
		Email    *string `json:"email" validate:"omitempty,email,max=128"`
		Password *string `json:"password" validate:"omitempty,min=3,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid body")
		return
	}
	if body.Name != nil {
		name := SanitizeName(*body.Name)
		body.Name = &name
	}
	if body.Email != nil {
		email := SanitizeEmail(*body.Email)
		body.Email = &email
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
		return
	}
	result, err := h.update.Execute(r.Context(), id, auth.UpdateInput{
		Name:     body.Name,
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{ID: result.ID, Name: result.Name, Email: result.Email})
}

func (h *AuthHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUserID(w, r)
	if !ok {
		return
	}
	if err := h.remove.Execute(r.Context(), id); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	AuditLog(h.log, r, "account_removed", id.String(), true, "")
	w.WriteHeader(http.StatusNoContent)
}

func pathUserID(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	id, err := domain.ParseUserID(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid user id")
		return domain.UserID{}, false
	}
	return id, true
}
