package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"giftdash/internal/errors"
	"giftdash/internal/model"
	"giftdash/internal/service"
)

// DashboardHandler handles gift card dashboard endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// SearchRequest carries the card table filters.
type SearchRequest struct {
	GiftCard string `query:"giftcard"`
	Status   string `query:"status"`
	Channel  string `query:"channel"`
	IP       string `query:"ip"`
}

func (r SearchRequest) criteria() service.Criteria {
	return service.Criteria{GiftCard: r.GiftCard, Status: r.Status, Channel: r.Channel, IP: r.IP}
}

// ListCardsRequest carries the filters and sort state of the card table.
type ListCardsRequest struct {
	SearchRequest
	Sort  string `query:"sort"`
	Order string `query:"order" validate:"omitempty,oneof=asc desc"`
}

// GeoPointsRequest carries the map filters and camera choices.
type GeoPointsRequest struct {
	SearchRequest
	Zoom  int    `query:"zoom" validate:"omitempty,oneof=10 20 50 100"`
	Focus string `query:"focus"`
}

// ToggleSortRequest represents a sort column selection.
type ToggleSortRequest struct {
	Sort  string `json:"sort"`
	Order string `json:"order" validate:"omitempty,oneof=asc desc"`
	Field string `json:"field" validate:"required"`
}

// ListCards godoc
// @Summary List gift cards
// @Description Filters by substring criteria, then sorts by gift card number, IP address or risk score.
// @Tags cards
// @Produce json
// @Param giftcard query string false "Gift card number substring"
// @Param status query string false "Status substring, case-insensitive"
// @Param channel query string false "Purchase channel substring, case-insensitive"
// @Param ip query string false "IP address substring"
// @Param sort query string false "Sort field" Enums(giftcard, ip, risk)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} service.CardTable
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [get]
func (h *DashboardHandler) ListCards(c echo.Context) error {
	var req ListCardsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid query",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	table, err := h.dashboardService.ListCards(c.Request().Context(), service.ListQuery{
		Criteria: req.criteria(),
		Sort: service.SortState{
			Field: service.SortField(req.Sort),
			Order: service.SortOrder(req.Order),
		},
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, table)
}

// GetCard godoc
// @Summary Get gift card details
// @Description Card fields, current status, risk score and event timeline.
// @Tags cards
// @Produce json
// @Param id path string true "Gift card ID"
// @Success 200 {object} service.CardDetail
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id} [get]
func (h *DashboardHandler) GetCard(c echo.Context) error {
	detail, err := h.dashboardService.CardDetail(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, detail)
}

// GetCardEvents godoc
// @Summary Get gift card timeline
// @Description Events of one card, most recent first.
// @Tags cards
// @Produce json
// @Param id path string true "Gift card ID"
// @Success 200 {array} service.TimelineEntry
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id}/events [get]
func (h *DashboardHandler) GetCardEvents(c echo.Context) error {
	entries, err := h.dashboardService.Timeline(c.Request().Context(), model.ID(c.Param("id")))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, entries)
}

// ToggleSort godoc
// @Summary Toggle the sort column
// @Description Selecting the current field flips the order; a new field starts ascending.
// @Tags cards
// @Accept json
// @Produce json
// @Param request body ToggleSortRequest true "Current state and selected field"
// @Success 200 {object} service.SortState
// @Failure 400 {object} errors.ErrorResponse
// @Router /sort/toggle [post]
func (h *DashboardHandler) ToggleSort(c echo.Context) error {
	var req ToggleSortRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	current := service.DefaultSortState()
	if req.Sort != "" {
		current = service.SortState{Field: service.SortField(req.Sort), Order: service.SortAsc}
		if req.Order != "" {
			current.Order = service.SortOrder(req.Order)
		}
	}

	return c.JSON(http.StatusOK, h.dashboardService.ToggleSort(current, service.SortField(req.Field)))
}

// GeoPoints godoc
// @Summary Map markers
// @Description Cards grouped by exact coordinates, with the initial map camera.
// @Tags map
// @Produce json
// @Param giftcard query string false "Gift card number substring"
// @Param status query string false "Status substring, case-insensitive"
// @Param channel query string false "Purchase channel substring, case-insensitive"
// @Param ip query string false "IP address substring"
// @Param zoom query int false "Zoom preset in percent" Enums(10, 20, 50, 100)
// @Param focus query string false "Location to centre on, as lat,lon"
// @Success 200 {object} service.MapData
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /geopoints [get]
func (h *DashboardHandler) GeoPoints(c echo.Context) error {
	var req GeoPointsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid query",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	data, err := h.dashboardService.GeoPoints(c.Request().Context(), service.GeoQuery{
		Criteria:    req.criteria(),
		ZoomPercent: req.Zoom,
		Focus:       req.Focus,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, data)
}

// Summary godoc
// @Summary Dashboard totals
// @Tags summary
// @Produce json
// @Success 200 {object} service.Summary
// @Router /summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboardService.Summary(c.Request().Context()))
}
