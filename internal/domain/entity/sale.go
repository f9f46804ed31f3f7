package entity

import (
	"time"

	"github.com/personnalite/estoque-api/pkg/money"
)

// SaleRecord is one sale captured in a session ledger. Name and value are
// copied from the product at capture time, not referenced: editing or
// deleting a product never changes past sales.
type SaleRecord struct {
	// ID is a stable monotonic identifier assigned by the ledger at
	// creation. Records received over the wire carry a zero ID.
	ID            uint64 `json:"id,omitempty"`
	ProductName   string `json:"product_name"`
	Value         string `json:"value"`          // formatted, e.g. "R$ 10,00"
	PaymentMethod string `json:"payment_method"` // display label, e.g. "Dinheiro"
	Date          string `json:"date"`           // dd/mm/yyyy
}

// Totals is the derived aggregate over a ledger: the grand total plus one
// bucket per payment method. It is always recomputed, never stored.
type Totals struct {
	General  money.Amount `json:"general"`
	Dinheiro money.Amount `json:"dinheiro"`
	Debito   money.Amount `json:"debito"`
	Credito  money.Amount `json:"credito"`
	Pix      money.Amount `json:"pix"`
}

// ReportSnapshot is the immutable pairing of ledger contents and totals
// handed to the renderer for one report-generation request.
type ReportSnapshot struct {
	Sales       []SaleRecord
	Totals      Totals
	GeneratedAt time.Time
}

// NewReportSnapshot copies the sales slice so later ledger mutations cannot
// reach into a snapshot already handed to the renderer.
func NewReportSnapshot(sales []SaleRecord, totals Totals) ReportSnapshot {
	copied := make([]SaleRecord, len(sales))
	copy(copied, sales)
	return ReportSnapshot{
		Sales:       copied,
		Totals:      totals,
		GeneratedAt: time.Now(),
	}
}
