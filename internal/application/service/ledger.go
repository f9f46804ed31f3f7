package service

import (
	"sync"
	"time"

	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/pkg/apperror"
	"github.com/personnalite/estoque-api/pkg/money"
)

const ledgerDateLayout = "02/01/2006"

// Ledger is the ordered list of sales recorded in one session. It is owned
// by the session that created it and is never persisted.
//
// Each record gets a stable monotonic id at creation; removal is keyed by
// that id, so a removal can never hit the wrong row even if the display
// indices have shifted. Display order is insertion order.
type Ledger struct {
	mu     sync.Mutex
	nextID uint64
	sales  []entity.SaleRecord
}

// NewLedger creates an empty session ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends a sale to the ledger, stamping the capture date and the
// record id. The product name and value are copied, not referenced.
func (l *Ledger) Add(productName string, value money.Amount, method enum.PaymentMethod) entity.SaleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	record := entity.SaleRecord{
		ID:            l.nextID,
		ProductName:   productName,
		Value:         value.String(),
		PaymentMethod: method.String(),
		Date:          time.Now().Format(ledgerDateLayout),
	}
	l.sales = append(l.sales, record)
	return record
}

// Remove deletes the record with the given id, preserving the order of the
// remaining records.
func (l *Ledger) Remove(id uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.sales {
		if l.sales[i].ID == id {
			l.sales = append(l.sales[:i], l.sales[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("Sale")
}

// Sales returns the recorded sales in insertion order. The returned slice
// is a copy.
func (l *Ledger) Sales() []entity.SaleRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.SaleRecord, len(l.sales))
	copy(out, l.sales)
	return out
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sales)
}

// Totals recomputes the aggregate over the current ledger contents.
func (l *Ledger) Totals() entity.Totals {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Aggregate(l.sales)
}

// Snapshot captures the current sales and totals for one report request.
func (l *Ledger) Snapshot() entity.ReportSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return entity.NewReportSnapshot(l.sales, Aggregate(l.sales))
}
