package facility

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lamasamir/hms/internal/platform/auth"
	"github.com/lamasamir/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/inventory", h.ListInventoryItems)
	api.GET("/inventory/:id", h.GetInventoryItem)
	api.GET("/entrylogs", h.ListEntryLogs)
	api.GET("/entrylogs/:id", h.GetEntryLog)

	admin := api.Group("", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/inventory", h.CreateInventoryItem)
	admin.POST("/entrylogs", h.CreateEntryLog)
}

func (h *Handler) CreateInventoryItem(c echo.Context) error {
	var item InventoryItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.CreateInventoryItem(c.Request().Context(), &item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) GetInventoryItem(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid inventory item id")
	}
	item, err := h.svc.GetInventoryItem(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "inventory item not found")
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) ListInventoryItems(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListInventoryItems(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list inventory items")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) CreateEntryLog(c echo.Context) error {
	var log EntryLog
	if err := c.Bind(&log); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := h.svc.CreateEntryLog(c.Request().Context(), &log); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, log)
}

func (h *Handler) GetEntryLog(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid entry log id")
	}
	log, err := h.svc.GetEntryLog(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "entry log not found")
	}
	return c.JSON(http.StatusOK, log)
}

func (h *Handler) ListEntryLogs(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListEntryLogs(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list entry logs")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
