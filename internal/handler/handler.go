package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"main/internal/auth"
	"main/internal/config"
	"main/internal/database"
)

type Handler struct {
	users   database.UserStore
	reviews database.ReviewStore
	cfg     *config.Config
	google  auth.GoogleAuthenticator
}

// New builds a Handler. google may be nil when sign-in credentials are not
// configured; the Google endpoints then answer 501.
func New(users database.UserStore, reviews database.ReviewStore, cfg *config.Config, google auth.GoogleAuthenticator) *Handler {
	return &Handler{users, reviews, cfg, google}
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to Owais Optics API",
		"status":  "running",
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// errTable maps sentinel errors to HTTP statuses in one place so handlers
// never branch on status codes themselves.
var errTable = []struct {
	err    error
	status int
}{
	{database.ErrInvalidID, http.StatusBadRequest},
	{database.ErrNotFound, http.StatusNotFound},
	{database.ErrEmailTaken, http.StatusBadRequest},
	{database.ErrUnavailable, http.StatusServiceUnavailable},
	{auth.ErrUpstream, http.StatusBadRequest},
	{auth.ErrNotConfigured, http.StatusNotImplemented},
}

func errStatus(err error) int {
	for _, e := range errTable {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// abortError renders err through the status table. msg overrides the error
// text when a handler has a more specific message for the client.
func abortError(c *gin.Context, err error, msg string) {
	if msg == "" {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(errStatus(err), gin.H{"detail": msg})
}

func abortDetail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}
