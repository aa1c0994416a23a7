package handlers

import (
	"net/http"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the date-range report page
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(r *gin.Engine, reportingService portssvc.ReportingService) {
	h := &reportingHandler{reportingService: reportingService}
	r.GET("/report", h.report)
}

// report runs the range query when both from and to are given and echoes the
// query back into the filter form.
func (h *reportingHandler) report(c *gin.Context) {
	var q dto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}
	params, err := q.ToParams()
	if err != nil {
		respondError(c, err, "")
		return
	}

	report, err := h.reportingService.Report(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.HTML(http.StatusOK, "report.html", gin.H{
		"Title":       "Report",
		"Types":       domain.RecordTypes,
		"Records":     report.Records,
		"Income":      report.Income,
		"Expenditure": report.Expenditure,
		"SumSource":   report.SumSource,
		"From":        q.From,
		"To":          q.To,
		"SourceType":  q.SourceType,
		"SourceName":  q.SourceName,
	})
}
