package handlers

import (
	"net/http"
	"strings"

	"github.com/ammica/fuel-backend/internal/services"
)

// ReportQuery holds the query parameters shared by every report. A filter
// other than custom reports over all time.
type ReportQuery struct {
	Filter    string `json:"filter"`
	StartDate string `json:"start_date" validate:"required_if=Filter custom"`
	EndDate   string `json:"end_date" validate:"required_if=Filter custom"`
}

type ReportHandler struct {
	reports   *services.ReportService
	validator *services.ValidationHelper
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reports:   reports,
		validator: services.NewValidationHelper(),
	}
}

// SalesByType reports total quantity per fuel type
// @Summary Sales by fuel type
// @Description Sum of quantity grouped by fuel type, optionally within an inclusive date range
// @Tags reports
// @Produce json
// @Param filter query string false "custom for a date range, anything else is alltime"
// @Param start_date query string false "Range start, required for custom"
// @Param end_date query string false "Range end, required for custom"
// @Success 200 {array} models.FuelTypeTotal
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /sales_by_type [get]
func (h *ReportHandler) SalesByType(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.SalesByType(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	services.SendJSON(w, http.StatusOK, rows)
}

// SalesOverTime reports revenue per day
// @Summary Sales over time
// @Description Sum of quantity*price grouped by date, ascending by date
// @Tags reports
// @Produce json
// @Param filter query string false "custom for a date range, anything else is alltime"
// @Param start_date query string false "Range start, required for custom"
// @Param end_date query string false "Range end, required for custom"
// @Success 200 {array} models.DailyTotal
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /sales_over_time [get]
func (h *ReportHandler) SalesOverTime(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.SalesOverTime(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	services.SendJSON(w, http.StatusOK, rows)
}

// Reports returns quantity and revenue per fuel type
// @Summary Combined report
// @Description Sum of quantity and of quantity*price grouped by fuel type
// @Tags reports
// @Produce json
// @Param filter query string false "custom for a date range, anything else is alltime"
// @Param start_date query string false "Range start, required for custom"
// @Param end_date query string false "Range end, required for custom"
// @Success 200 {array} models.FuelTypeReport
// @Failure 400 {object} services.ErrorResponse
// @Failure 500 {object} services.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	rows, err := h.reports.CombinedReport(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	services.SendJSON(w, http.StatusOK, rows)
}

func (h *ReportHandler) parseFilter(w http.ResponseWriter, r *http.Request) (services.DateFilter, bool) {
	q := r.URL.Query()
	req := ReportQuery{
		Filter:    strings.TrimSpace(q.Get("filter")),
		StartDate: strings.TrimSpace(q.Get("start_date")),
		EndDate:   strings.TrimSpace(q.Get("end_date")),
	}

	if err := h.validator.ValidateStruct(&req); err != nil {
		services.SendErrorResponse(w, "Both start_date and end_date are required for custom filter", http.StatusBadRequest, err)
		return services.DateFilter{}, false
	}

	return services.DateFilter{
		Mode:      req.Filter,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}, true
}
