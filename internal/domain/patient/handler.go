package patient

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
	e.GET("/patients", h.ListPatients)
	e.POST("/patients", h.CreatePatient)
	e.GET("/patients/:id", h.GetPatient)
	e.POST("/patients/:id/assign-provider", h.AssignProvider)
	e.POST("/patients/:id/change-status", h.ChangeStatus)
	e.GET("/patients/:id/history", h.History)
}

func (h *Handler) ListPatients(c echo.Context) error {
	items, err := h.svc.ListPatients(c.Request().Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list patients failed")
		return apperr.JSON(c, err, "Failed to fetch patients")
	}
	if items == nil {
		items = []*Patient{}
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	p, err := h.svc.CreatePatient(c.Request().Context(), payload)
	if err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("create patient failed")
		}
		return apperr.JSON(c, err, "Failed to create patient")
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.GetPatient(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("fetch patient failed")
		}
		return apperr.JSON(c, err, "Failed to fetch patient")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AssignProvider(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.svc.AssignProvider(c.Request().Context(), c.Param("id"), payload); err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("assign provider failed")
		}
		return apperr.JSON(c, err, "Failed to assign provider")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) ChangeStatus(c echo.Context) error {
	payload := map[string]interface{}{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if err := h.svc.ChangeStatus(c.Request().Context(), c.Param("id"), payload); err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("change status failed")
		}
		return apperr.JSON(c, err, "Failed to change status")
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) History(c echo.Context) error {
	items, err := h.svc.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		if apperr.Status(err) == http.StatusInternalServerError {
			h.logger.Error().Err(err).Msg("fetch history failed")
		}
		return apperr.JSON(c, err, "Failed to fetch history")
	}
	if items == nil {
		items = []*StatusChange{}
	}
	return c.JSON(http.StatusOK, items)
}
