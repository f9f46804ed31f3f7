package service

import (
	"testing"

	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/pkg/money"
	"github.com/stretchr/testify/assert"
)

func sale(value, method string) entity.SaleRecord {
	return entity.SaleRecord{
		ProductName:   "Produto",
		Value:         value,
		PaymentMethod: method,
		Date:          "01/09/2026",
	}
}

func assertAmount(t *testing.T, expected float64, actual money.Amount) {
	t.Helper()
	assert.True(t, actual.Equal(money.FromFloat(expected)),
		"expected %v, got %s", expected, actual)
}

func TestAggregateEmptyLedger(t *testing.T) {
	totals := Aggregate(nil)

	assertAmount(t, 0, totals.General)
	assertAmount(t, 0, totals.Dinheiro)
	assertAmount(t, 0, totals.Debito)
	assertAmount(t, 0, totals.Credito)
	assertAmount(t, 0, totals.Pix)
}

func TestAggregateBucketsByMethod(t *testing.T) {
	totals := Aggregate([]entity.SaleRecord{
		sale("R$ 10,00", "Dinheiro"),
		sale("R$ 5,50", "Pix"),
	})

	assertAmount(t, 15.50, totals.General)
	assertAmount(t, 10, totals.Dinheiro)
	assertAmount(t, 5.50, totals.Pix)
	assertAmount(t, 0, totals.Debito)
	assertAmount(t, 0, totals.Credito)
}

func TestAggregateMatchesLabelsCaseInsensitively(t *testing.T) {
	totals := Aggregate([]entity.SaleRecord{
		sale("R$ 7,00", "débito"),
		sale("R$ 3,00", "Crédito"),
		sale("R$ 2,00", "PIX"),
	})

	assertAmount(t, 12, totals.General)
	assertAmount(t, 7, totals.Debito)
	assertAmount(t, 3, totals.Credito)
	assertAmount(t, 2, totals.Pix)
}

func TestAggregateAcceptsUnaccentedSpellings(t *testing.T) {
	totals := Aggregate([]entity.SaleRecord{
		sale("R$ 4,00", "debito"),
		sale("R$ 6,00", "credito"),
	})

	assertAmount(t, 4, totals.Debito)
	assertAmount(t, 6, totals.Credito)
}

// A label outside the closed set counts toward the grand total only.
func TestAggregateUnknownMethodHitsGeneralOnly(t *testing.T) {
	totals := Aggregate([]entity.SaleRecord{
		sale("R$ 10,00", "Dinheiro"),
		sale("R$ 9,99", "Cheque"),
	})

	assertAmount(t, 19.99, totals.General)
	assertAmount(t, 10, totals.Dinheiro)
	assertAmount(t, 0, totals.Debito)
	assertAmount(t, 0, totals.Credito)
	assertAmount(t, 0, totals.Pix)
}

func TestAggregateSkipsUnparseableValues(t *testing.T) {
	totals := Aggregate([]entity.SaleRecord{
		sale("R$ 10,00", "Dinheiro"),
		sale("não é dinheiro", "Dinheiro"),
	})

	assertAmount(t, 10, totals.General)
	assertAmount(t, 10, totals.Dinheiro)
}

// Aggregation is a pure function of the ledger contents: running it after
// every mutation gives the same result as running it once at the end.
func TestAggregateIsIdempotent(t *testing.T) {
	ledger := NewLedger()

	ledger.Add("Monster Energy", money.FromFloat(12), "Dinheiro")
	first := Aggregate(ledger.Sales())

	rec := ledger.Add("Água", money.FromFloat(3), "Pix")
	Aggregate(ledger.Sales())
	assert.NoError(t, ledger.Remove(rec.ID))

	final := Aggregate(ledger.Sales())
	assert.Equal(t, first, final)
	assert.Equal(t, final, Aggregate(ledger.Sales()))
}
