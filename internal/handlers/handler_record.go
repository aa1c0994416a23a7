package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/money_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/money_ledger/internal/core/ports/services"
	"github.com/SscSPs/money_ledger/internal/dto"
	"github.com/SscSPs/money_ledger/internal/middleware"
	"github.com/SscSPs/money_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

// recordHandler serves the per-type list, create, edit and update pages
// plus the shared delete action.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
	analytics     *utils.PosthogClientWrapper
}

func registerRecordRoutes(r *gin.Engine, recordService portssvc.RecordSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := &recordHandler{recordService: recordService, analytics: analytics}

	for _, t := range domain.RecordTypes {
		base := "/" + t.String()
		r.GET(base, h.list(t))
		r.POST(base, h.create(t))
		r.GET(base+"/:id/edit", h.edit(t))
		r.PUT(base+"/:id", h.update(t))
	}
	r.POST("/delete/:id", h.delete)
}

func listPath(t domain.RecordType) string {
	return "/" + t.String()
}

func notFoundMessage(t domain.RecordType) string {
	return t.Label() + " record not found"
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

// bindRecordForm binds and parses the record form, writing a 400 on failure.
func bindRecordForm(c *gin.Context) (dto.RecordRequest, bool) {
	var form dto.RecordForm
	if err := c.ShouldBind(&form); err != nil {
		respondBindingError(c, err)
		return dto.RecordRequest{}, false
	}
	req, err := form.ToRequest()
	if err != nil {
		respondError(c, err, "")
		return dto.RecordRequest{}, false
	}
	return req, true
}

func (h *recordHandler) list(t domain.RecordType) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.recordService.ListRecordsByType(c.Request.Context(), t)
		if err != nil {
			respondError(c, err, "")
			return
		}
		c.HTML(http.StatusOK, "records.html", gin.H{
			"Title":   t.Label(),
			"Type":    t,
			"Records": records,
		})
	}
}

func (h *recordHandler) create(t domain.RecordType) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindRecordForm(c)
		if !ok {
			return
		}

		record, err := h.recordService.CreateRecord(c.Request.Context(), t, req)
		if err != nil {
			respondError(c, err, "")
			return
		}

		middleware.PosthogEvent(c, h.analytics, "record_created", map[string]any{"type": t.String(), "record_id": record.ID})
		c.Redirect(http.StatusFound, listPath(t))
	}
}

func (h *recordHandler) edit(t domain.RecordType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.String(http.StatusNotFound, notFoundMessage(t))
			return
		}

		record, err := h.recordService.GetRecord(c.Request.Context(), id, t)
		if err != nil {
			respondError(c, err, notFoundMessage(t))
			return
		}
		c.HTML(http.StatusOK, "edit.html", gin.H{
			"Title":  "Edit " + t.Label(),
			"Type":   t,
			"Record": record,
		})
	}
}

// update applies only when both id and type match; anything else is a no-op
// that still redirects.
func (h *recordHandler) update(t domain.RecordType) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindRecordForm(c)
		if !ok {
			return
		}

		id, ok := parseID(c)
		if !ok {
			c.Redirect(http.StatusFound, listPath(t))
			return
		}

		if err := h.recordService.UpdateRecord(c.Request.Context(), id, t, req); err != nil {
			respondError(c, err, "")
			return
		}
		c.Redirect(http.StatusFound, listPath(t))
	}
}

func (h *recordHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), id); err != nil {
		respondError(c, err, "")
		return
	}
	middleware.PosthogEvent(c, h.analytics, "record_deleted", nil)
	c.Redirect(http.StatusFound, "/")
}
