package handlers

import (
	"net/http"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type homeHandler struct {
	reportingService portssvc.ReportingService
}

func registerHomeRoutes(r *gin.Engine, reportingService portssvc.ReportingService) {
	h := &homeHandler{reportingService: reportingService}

	r.GET("/", h.index)
	r.GET("/add", h.add)
}

// index shows all-time income, expenditure and balance.
func (h *homeHandler) index(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "Summary",
		"Income":      summary.Income,
		"Expenditure": summary.Expenditure,
		"Balance":     summary.Balance,
	})
}

func (h *homeHandler) add(c *gin.Context) {
	c.HTML(http.StatusOK, "add.html", gin.H{
		"Title": "Add",
		"Types": domain.RecordTypes,
		"Blank": domain.Record{},
	})
}
