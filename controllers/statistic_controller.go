package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/services"
)

type StatisticController struct {
	statistics *services.StatisticService
}

func NewStatisticController(statistics *services.StatisticService) *StatisticController {
	return &StatisticController{statistics: statistics}
}

// GetRange godoc
// @Summary Sales statistics for a date range
// @Tags Statistics
// @Security BearerAuth
// @Produce json
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD), inclusive"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /statistics/range [get]
func (ctrl *StatisticController) GetRange(c *gin.Context) {
	report, err := ctrl.statistics.RangeReport(c.Request.Context(), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get range statistics successful", report)
}

// GetSingle godoc
// @Summary Sales statistics for a single day
// @Tags Statistics
// @Security BearerAuth
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /statistics/single [get]
func (ctrl *StatisticController) GetSingle(c *gin.Context) {
	report, err := ctrl.statistics.SingleDayReport(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Get single day statistics successful", report)
}
