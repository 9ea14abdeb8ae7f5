package costing

import "github.com/shopspring/decimal"

// PaymentStatus classifies how settled an invoice is
type PaymentStatus string

const (
	// PaymentStatusPaid means the balance is fully settled
	PaymentStatusPaid PaymentStatus = "Paid"
	// PaymentStatusPartial means some but not all of the total has been paid
	PaymentStatusPartial PaymentStatus = "Partial"
	// PaymentStatusCredit means nothing meaningful has been paid yet
	PaymentStatusCredit PaymentStatus = "Credit"
)

// paymentEpsilon absorbs sub-cent rounding noise in stored amounts.
var paymentEpsilon = decimal.NewFromFloat(0.01)

// InvoiceStatus is the derived settlement state of an invoice.
type InvoiceStatus struct {
	Status     PaymentStatus   `json:"status"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Balance    decimal.Decimal `json:"balance"`
}

// Invoice is anything with a total and a stored paid amount. Both sales and
// purchases qualify.
type Invoice interface {
	InvoiceID() string
	InvoiceTotal() decimal.Decimal
	InvoicePaid() decimal.Decimal
}

// InvoiceID implements Invoice
func (s *Sale) InvoiceID() string { return s.ID }

// InvoiceTotal implements Invoice
func (s *Sale) InvoiceTotal() decimal.Decimal { return s.TotalCost }

// InvoicePaid implements Invoice
func (s *Sale) InvoicePaid() decimal.Decimal { return s.PaidAmount }

// InvoiceID implements Invoice
func (p *Purchase) InvoiceID() string { return p.ID }

// InvoiceTotal implements Invoice
func (p *Purchase) InvoiceTotal() decimal.Decimal { return p.TotalCost }

// InvoicePaid implements Invoice
func (p *Purchase) InvoicePaid() decimal.Decimal { return p.PaidAmount }

// ResyncResult carries only the invoices whose paid amount was recomputed.
type ResyncResult struct {
	Sales     []Sale     `json:"sales,omitempty"`
	Purchases []Purchase `json:"purchases,omitempty"`
}

// InvoiceReconciliationService derives settlement status from invoices and,
// on request, recomputes stored paid amounts from payment records. The two
// contracts coexist: StatusOf trusts the invoice's stored paidAmount, Resync
// treats payments as the source of truth. Callers pick which is
// authoritative; the service never reconciles implicitly on read.
type InvoiceReconciliationService struct{}

// NewInvoiceReconciliationService creates a new InvoiceReconciliationService
func NewInvoiceReconciliationService() *InvoiceReconciliationService {
	return &InvoiceReconciliationService{}
}

// StatusOf derives the settlement status from the invoice's stored fields.
// A nil or unidentified invoice reads as Credit for whatever totals it has.
func (s *InvoiceReconciliationService) StatusOf(invoice Invoice) InvoiceStatus {
	if invoice == nil || invoice.InvoiceID() == "" {
		status := InvoiceStatus{Status: PaymentStatusCredit, PaidAmount: decimal.Zero, Balance: decimal.Zero}
		if invoice != nil {
			status.PaidAmount = invoice.InvoicePaid()
			status.Balance = invoice.InvoiceTotal()
		}
		return status
	}

	paid := invoice.InvoicePaid()
	balance := invoice.InvoiceTotal().Sub(paid)

	status := PaymentStatusCredit
	switch {
	case balance.LessThanOrEqual(paymentEpsilon):
		status = PaymentStatusPaid
	case paid.GreaterThan(paymentEpsilon):
		status = PaymentStatusPartial
	}

	reported := balance
	if balance.LessThanOrEqual(paymentEpsilon) {
		reported = decimal.Zero
	}
	return InvoiceStatus{Status: status, PaidAmount: paid, Balance: reported}
}

// Resync recomputes the paid amount of the given invoices from the payment
// records, as the sum of amount plus settlement discount over payments linked
// to each invoice. It returns updated copies of only the matched invoices;
// the input slices are never mutated.
func (s *InvoiceReconciliationService) Resync(invoiceIDs []string, payments []Payment, sales []Sale, purchases []Purchase) ResyncResult {
	var result ResyncResult
	for _, id := range invoiceIDs {
		paid := decimal.Zero
		for _, payment := range payments {
			if payment.InvoiceID == id {
				paid = paid.Add(payment.Amount).Add(payment.Discount)
			}
		}

		for i := range sales {
			if sales[i].ID == id {
				updated := sales[i]
				updated.PaidAmount = paid
				result.Sales = append(result.Sales, updated)
				break
			}
		}
		for i := range purchases {
			if purchases[i].ID == id {
				updated := purchases[i]
				updated.PaidAmount = paid
				result.Purchases = append(result.Purchases, updated)
				break
			}
		}
	}
	return result
}
