package enum

import "strings"

// PaymentMethod is the closed set of payment methods a sale may carry.
// The values are the display labels shown to the user and embedded in
// sale records and reports.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "Dinheiro"
	PaymentDebit  PaymentMethod = "Débito"
	PaymentCredit PaymentMethod = "Crédito"
	PaymentPix    PaymentMethod = "Pix"
)

// PaymentMethods returns all methods in display order.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentDebit, PaymentCredit, PaymentPix}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// Key returns the lowercase unaccented bucket key used by the totals
// aggregator and the report wire shape.
func (m PaymentMethod) Key() string {
	switch m {
	case PaymentCash:
		return "dinheiro"
	case PaymentDebit:
		return "debito"
	case PaymentCredit:
		return "credito"
	case PaymentPix:
		return "pix"
	}
	return ""
}

// ParsePaymentMethod matches a label against the closed set, case
// insensitively. Both accented and unaccented spellings are accepted
// ("Débito" and "debito" are the same method).
func ParsePaymentMethod(label string) (PaymentMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "dinheiro":
		return PaymentCash, true
	case "débito", "debito":
		return PaymentDebit, true
	case "crédito", "credito":
		return PaymentCredit, true
	case "pix":
		return PaymentPix, true
	}
	return "", false
}
