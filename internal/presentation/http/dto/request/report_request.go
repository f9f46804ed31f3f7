package request

// ReportSaleItem is a single sale entry as submitted by the client.
type ReportSaleItem struct {
	Date          string `json:"date"`
	ProductName   string `json:"productName" binding:"required"`
	Value         string `json:"value" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// ReportTotals carries the client-computed totals. The server recomputes
// them from the sale entries, so these are accepted but never trusted.
type ReportTotals struct {
	General  float64 `json:"general"`
	Dinheiro float64 `json:"dinheiro"`
	Debito   float64 `json:"debito"`
	Credito  float64 `json:"credito"`
	Pix      float64 `json:"pix"`
}

// SendReportRequest represents a request to email a sales report built
// from a client-submitted sale list. Email is validated by the service
// so that a missing address yields a field-level validation error.
type SendReportRequest struct {
	Sales  []ReportSaleItem `json:"sales" binding:"required"`
	Totals *ReportTotals    `json:"totals"`
	Email  string           `json:"email"`
}

// AddSaleRequest represents a sale appended to the session ledger.
type AddSaleRequest struct {
	ProductName   string `json:"product_name" binding:"required"`
	Value         string `json:"value" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// GenerateReportRequest represents a report generation request for the
// session ledger. Destination is either "local" or "remote".
type GenerateReportRequest struct {
	Destination string `json:"destination" binding:"required"`
	Email       string `json:"email"`
}
