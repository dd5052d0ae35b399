package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/finpulse/finpulse/internal/domain/dto"
	"github.com/finpulse/finpulse/internal/service"
)

// Handler provides HTTP handlers for the financial data endpoints.
//
// Both endpoints follow the same contract: the response is always 200 with
// a well-formed JSON body, and validation problems are reported through the
// info.error field instead of HTTP status codes. Only a storage-layer fault
// produces a non-200 response.
type Handler struct {
	svc service.FinancialService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.FinancialService) *Handler {
	return &Handler{svc: svc}
}

// GetFinancialData handles GET /api/financial_data requests.
//
// GetFinancialData godoc
// @Summary      List daily financial data
// @Description  Returns daily open/close prices and volume, optionally filtered by symbol and date range, with pagination metadata. Validation errors are reported in info.error with a 200 status.
// @Tags         financial
// @Produce      json
// @Param        symbol      query     string  false  "Stock symbol" example(IBM)
// @Param        start_date  query     string  false  "Inclusive lower bound in YYYY-MM-DD" example(2023-03-01)
// @Param        end_date    query     string  false  "Inclusive upper bound in YYYY-MM-DD" example(2023-03-17)
// @Param        page        query     int     false  "Row offset (applied directly, not multiplied by limit)" default(0)
// @Param        limit       query     int     false  "Maximum rows returned" default(5)
// @Success      200  {object}  dto.FinancialDataResponse  "Success (possibly with info.error set)"
// @Failure      500  {object}  dto.ErrorResponse          "Storage failure"
// @Router       /api/financial_data [get]
func (h *Handler) GetFinancialData(c *gin.Context) {
	resp, err := h.svc.GetFinancialData(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to query financial data", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetStatistics handles GET /api/statistics requests.
//
// GetStatistics godoc
// @Summary      Average statistics for a symbol over a date range
// @Description  Returns average daily open/close prices and volume for the symbol within the inclusive date range. All three parameters are required; validation errors are reported in info.error with a 200 status.
// @Tags         financial
// @Produce      json
// @Param        symbol      query     string  true  "Stock symbol" example(IBM)
// @Param        start_date  query     string  true  "Inclusive lower bound in YYYY-MM-DD" example(2023-03-01)
// @Param        end_date    query     string  true  "Inclusive upper bound in YYYY-MM-DD" example(2023-03-17)
// @Success      200  {object}  dto.StatisticsResponse  "Success (possibly with info.error set)"
// @Failure      500  {object}  dto.ErrorResponse       "Storage failure"
// @Router       /api/statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	resp, err := h.svc.GetFinancialStatistics(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute statistics", err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
