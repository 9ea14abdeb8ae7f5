package dto

import (
	"github.com/erp/costing/internal/domain/costing"
	"github.com/shopspring/decimal"
)

// StockValueRequest asks for a stock valuation over a snapshot
type StockValueRequest struct {
	Snapshot *costing.Snapshot `json:"snapshot" binding:"required"`
	AsOf     string            `json:"as_of"`
	ItemID   string            `json:"item_id"`
}

// Options converts the request's query parameters to engine options
func (r *StockValueRequest) Options() costing.ValuationOptions {
	opts := costing.ValuationOptions{ItemID: r.ItemID}
	if r.AsOf != "" {
		opts.AsOf = costing.ParseDate(r.AsOf)
	}
	return opts
}

// SaleProfitRequest asks for the profitability of one sale
type SaleProfitRequest struct {
	Sale     *costing.Sale     `json:"sale" binding:"required"`
	Snapshot *costing.Snapshot `json:"snapshot" binding:"required"`
}

// InvoiceStatusRequest asks for the settlement status of an invoice's stored fields
type InvoiceStatusRequest struct {
	ID         string          `json:"id" binding:"required"`
	TotalCost  decimal.Decimal `json:"total_cost"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

// AvailableSerialsRequest asks for the unsold serials of an item
type AvailableSerialsRequest struct {
	ItemID        string             `json:"item_id" binding:"required"`
	Purchases     []costing.Purchase `json:"purchases"`
	Sales         []costing.Sale     `json:"sales"`
	ExcludeSaleID string             `json:"exclude_sale_id"`
}

// ResyncInvoicesRequest asks for paid amounts to be recomputed from payments
type ResyncInvoicesRequest struct {
	InvoiceIDs []string           `json:"invoice_ids" binding:"required,min=1"`
	Payments   []costing.Payment  `json:"payments"`
	Sales      []costing.Sale     `json:"sales"`
	Purchases  []costing.Purchase `json:"purchases"`
}

// AvailableSerialsResponse carries the available serial list
type AvailableSerialsResponse struct {
	ItemID  string   `json:"item_id"`
	Serials []string `json:"serials"`
}
