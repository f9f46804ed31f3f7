package service

import (
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/pkg/money"
)

// Aggregate recomputes the totals for a list of sales. It is a pure
// function: a full O(n) pass with no caching, run again after every
// ledger change.
//
// Each sale's formatted value is parsed back into a decimal and added to
// the grand total. The per-method bucket is chosen by the lowercased
// payment-method label; a label outside the closed set contributes to the
// grand total only. Unparseable values are skipped entirely.
func Aggregate(sales []entity.SaleRecord) entity.Totals {
	var totals entity.Totals

	for _, sale := range sales {
		value, err := money.Parse(sale.Value)
		if err != nil {
			continue
		}

		totals.General = totals.General.Add(value)

		method, ok := enum.ParsePaymentMethod(sale.PaymentMethod)
		if !ok {
			continue
		}
		switch method {
		case enum.PaymentCash:
			totals.Dinheiro = totals.Dinheiro.Add(value)
		case enum.PaymentDebit:
			totals.Debito = totals.Debito.Add(value)
		case enum.PaymentCredit:
			totals.Credito = totals.Credito.Add(value)
		case enum.PaymentPix:
			totals.Pix = totals.Pix.Add(value)
		}
	}

	return totals
}
