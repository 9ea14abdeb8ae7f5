package costing

import "github.com/shopspring/decimal"

// Item is a catalog entry. Items are immutable during a computation pass;
// the engine only ever reads them.
type Item struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	Serialized        bool            `json:"serialized"`
	OpeningStock      decimal.Decimal `json:"opening_stock"`
	OpeningUnitCost   decimal.Decimal `json:"opening_unit_cost"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// OpeningValue returns the value of the item's opening stock.
func (i *Item) OpeningValue() decimal.Decimal {
	return i.OpeningStock.Mul(i.OpeningUnitCost)
}

// FallbackUnitCost is the static cost used when FIFO lots are exhausted or a
// sold serial has no matching purchase. Overselling is priced, never rejected.
func (i *Item) FallbackUnitCost() decimal.Decimal {
	return i.OpeningUnitCost
}
