package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/personnalite/estoque-api/internal/application/service"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/internal/presentation/http/dto/request"
	"github.com/personnalite/estoque-api/internal/presentation/http/dto/response"
	"github.com/personnalite/estoque-api/pkg/apperror"
	"github.com/personnalite/estoque-api/pkg/money"
)

const sessionHeader = "X-Session-ID"

// SalesHandler handles the per-session sale ledger endpoints. Each client
// session owns an in-memory ledger keyed by the X-Session-ID header; nothing
// is ever persisted server-side.
type SalesHandler struct {
	sessions      *service.SessionStore
	reportService *service.ReportService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(sessions *service.SessionStore, reportService *service.ReportService) *SalesHandler {
	return &SalesHandler{sessions: sessions, reportService: reportService}
}

func (h *SalesHandler) ledger(c *gin.Context) (*service.Ledger, bool) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		response.BadRequest(c, "Missing "+sessionHeader+" header")
		return nil, false
	}
	return h.sessions.Ledger(sessionID), true
}

// Add appends a sale to the session ledger
func (h *SalesHandler) Add(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	var req request.AddSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	value, err := money.Parse(req.Value)
	if err != nil {
		response.Error(c, apperror.NewValidationError([]apperror.FieldError{
			{Field: "value", Message: "Valor monetário inválido"},
		}))
		return
	}

	method, ok := enum.ParsePaymentMethod(req.PaymentMethod)
	if !ok {
		response.Error(c, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "Forma de pagamento inválida"},
		}))
		return
	}

	record := ledger.Add(req.ProductName, value, method)
	response.Created(c, "Sale recorded successfully", record)
}

// List returns the session ledger in insertion order
func (h *SalesHandler) List(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, "Sales retrieved successfully", ledger.Sales())
}

// Remove deletes a single sale from the session ledger
func (h *SalesHandler) Remove(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := ledger.Remove(id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Totals returns the aggregated totals for the session ledger
func (h *SalesHandler) Totals(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}
	response.OK(c, "Totals retrieved successfully", ledger.Totals())
}

// GenerateReport renders the session ledger into a PDF report and either
// streams it back (local) or emails it (remote).
func (h *SalesHandler) GenerateReport(c *gin.Context) {
	ledger, ok := h.ledger(c)
	if !ok {
		return
	}

	var req request.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.reportService.Dispatch(&service.DispatchInput{
		Snapshot:    ledger.Snapshot(),
		Destination: req.Destination,
		Email:       req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.Document != nil {
		c.Header("Content-Disposition", `attachment; filename="`+result.Document.Filename+`"`)
		c.Data(200, "application/pdf", result.Document.Bytes)
		return
	}

	response.OK(c, result.Message, nil)
}
