package http

import (
	"net/http"
	"strconv"

	"github.com/stafflink/staffing-backend-go/internal/domain/report"
	"github.com/stafflink/staffing-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	yearParam := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearParam)
	if err != nil || year < 2000 || year > 2100 {
		response.BadRequest(w, "A valid year query parameter is required", nil)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")

	result, err := h.reportService.Monthly(r.Context(), year, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
