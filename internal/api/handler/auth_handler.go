package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/app/service"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

const refreshCookieName = "jwt"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/", h.login)
	r.Get("/refresh", h.refresh)
	r.Post("/logout", h.logout)
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	pair, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    pair.RefreshToken,
		Path:     "/",
		MaxAge:   int(config.AppConfig.RefreshExp / time.Second),
		HttpOnly: true,
		Secure:   config.AppConfig.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
	common.RespondWithJSON(w, http.StatusOK, accessTokenResponse{AccessToken: pair.AccessToken})
}

func (h *AuthHandler) refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Refresh cookie required")
		return
	}

	access, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, accessTokenResponse{AccessToken: access})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   config.AppConfig.CookieSecure,
		SameSite: http.SameSiteNoneMode,
	})
	common.RespondWithMessage(w, http.StatusOK, "Cookie cleared")
}
