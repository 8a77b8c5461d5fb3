package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"main/internal/auth"
	"main/internal/database"
	"main/internal/middleware"
	"main/internal/model"
)

const msgDBUnavailable = "Database not available. Please try again later."

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) tokenTTL() time.Duration {
	return time.Duration(h.cfg.JWTExpirationHours) * time.Hour
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Password) < 6 {
		abortDetail(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}

	existing, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		abortError(c, err, msgDBUnavailable)
		return
	}
	if existing != nil {
		abortDetail(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		abortError(c, err, "Failed to create account")
		return
	}

	user, err := h.users.Create(c.Request.Context(), &model.User{
		Email:        req.Email,
		Name:         req.Name,
		Provider:     model.ProviderEmail,
		PasswordHash: hash,
	})
	if err != nil {
		abortError(c, err, "")
		return
	}

	token, err := auth.NewToken(h.cfg.JWTSecret, h.cfg.JWTAlgorithm, user.ID, h.tokenTTL())
	if err != nil {
		abortError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortDetail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		abortError(c, err, msgDBUnavailable)
		return
	}
	if user == nil {
		abortDetail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if user.Provider == model.ProviderGoogle {
		abortDetail(c, http.StatusBadRequest, "This account was created with Google. Please use 'Continue with Google' to sign in.")
		return
	}
	if user.PasswordHash == "" {
		abortDetail(c, http.StatusBadRequest, "No password set for this account. Please use 'Continue with Google' to sign in.")
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		abortDetail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.NewToken(h.cfg.JWTSecret, h.cfg.JWTAlgorithm, user.ID, h.tokenTTL())
	if err != nil {
		abortError(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) GoogleAuth(c *gin.Context) {
	if h.google == nil {
		abortError(c, auth.ErrNotConfigured, "Google OAuth not configured. Please set GOOGLE_CLIENT_ID in environment.")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, h.google.AuthCodeURL())
}

func (h *Handler) GoogleCallback(c *gin.Context) {
	if h.google == nil {
		abortError(c, auth.ErrNotConfigured, "Google OAuth not configured")
		return
	}

	code := c.Query("code")
	if code == "" {
		abortDetail(c, http.StatusBadRequest, "Missing authorization code")
		return
	}

	gu, err := h.google.FetchUser(c.Request.Context(), code)
	if err != nil {
		abortError(c, err, "")
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), gu.Email)
	if err != nil {
		abortError(c, err, msgDBUnavailable)
		return
	}
	if user == nil {
		newUser := &model.User{
			Email:    gu.Email,
			Name:     gu.Name,
			Provider: model.ProviderGoogle,
			GoogleID: gu.ID,
		}
		if gu.Picture != "" {
			newUser.Avatar = &gu.Picture
		}
		user, err = h.users.Create(c.Request.Context(), newUser)
		if err != nil {
			abortError(c, err, "")
			return
		}
	}

	token, err := auth.NewToken(h.cfg.JWTSecret, h.cfg.JWTAlgorithm, user.ID, h.tokenTTL())
	if err != nil {
		abortError(c, err, "Failed to sign in")
		return
	}

	redirect := fmt.Sprintf("%s/reviews?token=%s&name=%s&avatar=%s",
		h.cfg.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(gu.Name),
		url.QueryEscape(gu.Picture),
	)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// Me returns the account behind the bearer token the middleware verified.
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		abortDetail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		// A malformed subject means the token does not belong to any account.
		if errors.Is(err, database.ErrInvalidID) {
			abortDetail(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		abortError(c, err, msgDBUnavailable)
		return
	}
	if user == nil {
		abortDetail(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	c.JSON(http.StatusOK, user)
}
