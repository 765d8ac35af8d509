package provider

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/careflow/careflow/internal/platform/apperr"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/providers", h.ListProviders)
	e.POST("/providers", h.CreateProvider)
}

func (h *Handler) ListProviders(c echo.Context) error {
	items, err := h.svc.ListProviders(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list providers failed")
		return apperr.JSON(c, err, "Failed to fetch providers")
	}
	if items == nil {
		items = []*Provider{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateProvider(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.svc.CreateProvider(c.Request().Context(), payload)
	if err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("create provider failed")
		}
		return apperr.JSON(c, err, "Failed to create provider")
	}
	return c.JSON(http.StatusCreated, p)
}
