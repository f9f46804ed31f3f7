package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/personnalite/estoque-api/internal/application/service"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/presentation/http/dto/request"
	"github.com/personnalite/estoque-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report generation and delivery requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SendReport renders a PDF report from a client-submitted sale list and
// emails it. Totals in the request body are ignored; the server recomputes
// them from the sales so the document always agrees with its entries.
func (h *ReportHandler) SendReport(c *gin.Context) {
	var req request.SendReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sales := make([]entity.SaleRecord, 0, len(req.Sales))
	for _, item := range req.Sales {
		sales = append(sales, entity.SaleRecord{
			ProductName:   item.ProductName,
			Value:         item.Value,
			PaymentMethod: item.PaymentMethod,
			Date:          item.Date,
		})
	}

	result, err := h.reportService.Dispatch(&service.DispatchInput{
		Snapshot:    h.reportService.SnapshotFromSales(sales),
		Destination: service.DestinationRemote,
		Email:       req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, result.Message, nil)
}
