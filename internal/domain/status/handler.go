package status

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
	e.GET("/statuses", h.ListStatuses)
	e.GET("/statuses/tree", h.StatusTree)
}

func (h *Handler) ListStatuses(c echo.Context) error {
	items, err := h.svc.ListStatuses(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list statuses failed")
		return apperr.JSON(c, err, "Failed to fetch statuses")
	}
	if items == nil {
		items = []Status{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) StatusTree(c echo.Context) error {
	tree, err := h.svc.Tree(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("build status tree failed")
		return apperr.JSON(c, err, "Failed to build status tree")
	}
	return c.JSON(http.StatusOK, tree)
}
