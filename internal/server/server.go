package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/songzhibin97/coinlens/internal/models"
)

// TokenService is the surface the handlers need from the service layer.
type TokenService interface {
	ListTokens(ctx context.Context) []models.TokenSummary
	GetToken(ctx context.Context, id string) *models.TokenInsight
}

// Handler handles token-related routes
type Handler struct {
	tokens TokenService
}

func NewHandler(tokens TokenService) *Handler {
	return &Handler{tokens: tokens}
}

// ListTokens handles GET /tokens
func (h *Handler) ListTokens(c *gin.Context) {
	c.JSON(http.StatusOK, h.tokens.ListTokens(c.Request.Context()))
}

// GetToken handles GET /tokens/:id. An unresolvable id renders a JSON null
// body; clients cannot distinguish it from an upstream failure.
func (h *Handler) GetToken(c *gin.Context) {
	token := h.tokens.GetToken(c.Request.Context(), c.Param("id"))
	if token == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, token)
}

// NewRouter builds the gin engine with the token routes wired in.
func NewRouter(tokens TokenService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	h := NewHandler(tokens)
	router.GET("/tokens", h.ListTokens)
	router.GET("/tokens/:id", h.GetToken)

	return router
}
