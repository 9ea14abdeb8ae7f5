package costing

import "github.com/shopspring/decimal"

// DiscountType defines how a sale-level discount is interpreted
type DiscountType string

const (
	// DiscountTypeFlat deducts a fixed amount
	DiscountTypeFlat DiscountType = "flat"
	// DiscountTypePercent deducts a percentage of the sale subtotal
	DiscountTypePercent DiscountType = "percent"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	return t == DiscountTypeFlat || t == DiscountTypePercent
}

// String returns the string representation
func (t DiscountType) String() string {
	return string(t)
}

// Discount is a sale-level price reduction. It is deducted from profit
// directly, not folded into COGS.
type Discount struct {
	Type  DiscountType    `json:"type" binding:"omitempty,discounttype"`
	Value decimal.Decimal `json:"value"`
}

// AmountOn resolves the discount against a sale subtotal. Any type other than
// flat is treated as a percentage, matching how the surrounding forms have
// always submitted it.
func (d Discount) AmountOn(subTotal decimal.Decimal) decimal.Decimal {
	if d.Type == DiscountTypeFlat {
		return d.Value
	}
	return subTotal.Mul(d.Value).Div(decimal.NewFromInt(100))
}

// PurchaseLine is one item position on a purchase. Serials are present only
// for serialized items; its origin date is the parent purchase's date.
type PurchaseLine struct {
	ItemID   string          `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Serials  []string        `json:"serials,omitempty"`
}

// Purchase is a supplier invoice. Its date plus its position in the snapshot
// slice is the FIFO ordering key for every lot it introduces.
type Purchase struct {
	ID         string          `json:"id"`
	Date       Date            `json:"date"`
	SupplierID string          `json:"supplier_id"`
	Lines      []PurchaseLine  `json:"lines"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// SaleLine is one item position on a sale.
type SaleLine struct {
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Serials   []string        `json:"serials,omitempty"`
}

// Sale is a customer invoice.
type Sale struct {
	ID         string          `json:"id"`
	Date       Date            `json:"date"`
	CustomerID string          `json:"customer_id"`
	Lines      []SaleLine      `json:"lines"`
	Discount   Discount        `json:"discount"`
	SubTotal   decimal.Decimal `json:"sub_total"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	TotalCost  decimal.Decimal `json:"total_cost"`
}

// PaymentDirection distinguishes money received from money paid out
type PaymentDirection string

const (
	// PaymentDirectionIn is money received against a sale
	PaymentDirectionIn PaymentDirection = "in"
	// PaymentDirectionOut is money paid against a purchase
	PaymentDirectionOut PaymentDirection = "out"
)

// Payment is a settlement record linked to exactly one invoice. The optional
// Discount is a settlement allowance; it counts toward the paid amount when
// invoices are resynced from payment records.
type Payment struct {
	ID        string           `json:"id"`
	InvoiceID string           `json:"invoice_id"`
	PartyID   string           `json:"party_id"`
	Type      PaymentDirection `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
	Discount  decimal.Decimal  `json:"discount"`
	Date      Date             `json:"date"`
	Method    string           `json:"method"`
}
