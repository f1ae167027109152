package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/dmarkhas/gameshop/internal/domain/errors"
	"github.com/dmarkhas/gameshop/internal/server/http/dto"
)

// ReportHandler serves the staff dashboards.
type ReportHandler struct {
	facade ReportFacade
}

// NewReportHandler creates ReportHandler instance.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade}
}

// OrdersPerDay handles GET /api/reports/orders-per-day/:period.
func (h *ReportHandler) OrdersPerDay(c *gin.Context) {
	days, ok := parsePeriod(c)
	if !ok {
		return
	}

	rows, err := h.facade.OrdersPerDay(c.Request.Context(), days)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrdersPerDayResponse(rows))
}

// MostBought handles GET /api/reports/most-bought/:period.
func (h *ReportHandler) MostBought(c *gin.Context) {
	days, ok := parsePeriod(c)
	if !ok {
		return
	}

	rows, err := h.facade.MostBoughtProducts(c.Request.Context(), days)
	if err != nil {
		reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductPurchasesResponse(rows))
}

func parsePeriod(c *gin.Context) (int, bool) {
	days, err := strconv.Atoi(c.Param("period"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return days, true
}

func reportError(c *gin.Context, err error) {
	if errors.Is(err, domainErrors.ErrInvalidPeriod) {
		c.Status(http.StatusBadRequest)
		return
	}
	c.Status(http.StatusInternalServerError)
}
