package costing

import (
	"sort"
	"time"

	"github.com/erp/costing/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ValuationOptions parameterize a stock valuation query.
type ValuationOptions struct {
	// AsOf is the point-in-time cutoff, inclusive. Zero means "now".
	AsOf Date
	// ItemID restricts the valuation to a single catalog entry when set.
	ItemID string
}

// ItemValuation is one item's contribution to the stock value.
type ItemValuation struct {
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	Serialized bool            `json:"serialized"`
	Quantity   decimal.Decimal `json:"quantity"`
	Value      decimal.Decimal `json:"value"`
}

// ValuationResult is the stock value as of a point in time, with per-item
// contributions and any data-quality findings from the replay.
type ValuationResult struct {
	AsOf        Date            `json:"as_of"`
	Total       decimal.Decimal `json:"total"`
	Items       []ItemValuation `json:"items"`
	Diagnostics []Diagnostic    `json:"diagnostics,omitempty"`
}

// StockValuationService values remaining stock at an arbitrary historical
// instant by replaying the transaction history from scratch. It holds no
// state; every call rebuilds lots and discards them.
type StockValuationService struct{}

// NewStockValuationService creates a new StockValuationService
func NewStockValuationService() *StockValuationService {
	return &StockValuationService{}
}

// saleEvent is one consuming sale line with its parent sale's ordering keys.
type saleEvent struct {
	saleID string
	date   Date
	line   SaleLine
}

// StockValue values all remaining stock as of the cutoff date.
//
// Purchases and sales are filtered inclusively (date <= asOf): a sale on the
// cutoff day depletes lots. This is deliberately asymmetric with the
// strictly-before replay used by sale profitability; the two filters answer
// different questions and must not be unified.
func (s *StockValuationService) StockValue(snap *Snapshot, opts ValuationOptions) (*ValuationResult, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	asOf := opts.AsOf
	if asOf.IsZero() {
		asOf = NewDate(time.Now())
	}
	if !asOf.Valid {
		return nil, shared.NewDomainError("INVALID_AS_OF_DATE", "Valuation cutoff date could not be parsed")
	}

	result := &ValuationResult{
		AsOf:  asOf,
		Total: decimal.Zero,
		Items: make([]ItemValuation, 0, len(snap.Items)),
	}

	purchases, sales, filterDiags := filterAsOf(snap.Purchases, snap.Sales, asOf)
	result.Diagnostics = append(result.Diagnostics, filterDiags...)

	if opts.ItemID != "" {
		item, ok := snap.ItemByID(opts.ItemID)
		if !ok {
			return nil, shared.ErrNotFound
		}
		s.valueItem(item, purchases, sales, result)
		return result, nil
	}

	for i := range snap.Items {
		s.valueItem(&snap.Items[i], purchases, sales, result)
	}
	return result, nil
}

// valueItem appends one item's contribution to the result.
func (s *StockValuationService) valueItem(item *Item, purchases []Purchase, sales []Sale, result *ValuationResult) {
	iv := ItemValuation{
		ItemID:     item.ID,
		Name:       item.Name,
		Serialized: item.Serialized,
		Quantity:   decimal.Zero,
		Value:      decimal.Zero,
	}

	if item.Serialized {
		available, diags := AvailableSerialLots(item.ID, purchases, sales, "")
		result.Diagnostics = append(result.Diagnostics, diags...)
		for _, lot := range available {
			iv.Value = iv.Value.Add(lot.UnitCost)
		}
		iv.Quantity = decimal.NewFromInt(int64(len(available)))
	} else {
		lots, diags := BuildLots(item.ID, purchases)
		result.Diagnostics = append(result.Diagnostics, diags...)
		for _, event := range collectSaleEvents(item.ID, sales) {
			dep := Deplete(lots, event.line.Quantity, item.FallbackUnitCost())
			if dep.Oversold() {
				result.Diagnostics = append(result.Diagnostics, diagOversold(item.ID, event.saleID))
			}
		}
		iv.Quantity = item.OpeningStock.Add(TotalRemaining(lots))
		iv.Value = item.OpeningValue().Add(RemainingValue(lots))
	}

	result.Items = append(result.Items, iv)
	result.Total = result.Total.Add(iv.Value)
}

// filterAsOf keeps transactions dated at or before the cutoff. Transactions
// with unparsable dates never satisfy the cutoff; each one is reported once.
func filterAsOf(purchases []Purchase, sales []Sale, asOf Date) ([]Purchase, []Sale, []Diagnostic) {
	var diags []Diagnostic
	keptPurchases := make([]Purchase, 0, len(purchases))
	for _, p := range purchases {
		if !p.Date.Valid {
			diags = append(diags, diagInvalidDate(p.ID, p.Date.Raw()))
			continue
		}
		if p.Date.OnOrBefore(asOf) {
			keptPurchases = append(keptPurchases, p)
		}
	}
	keptSales := make([]Sale, 0, len(sales))
	for _, s := range sales {
		if !s.Date.Valid {
			diags = append(diags, diagInvalidDate(s.ID, s.Date.Raw()))
			continue
		}
		if s.Date.OnOrBefore(asOf) {
			keptSales = append(keptSales, s)
		}
	}
	return keptPurchases, keptSales, diags
}

// collectSaleEvents flattens the sale lines consuming one item, ordered
// ascending by sale date with ties kept in original sequence.
func collectSaleEvents(itemID string, sales []Sale) []saleEvent {
	events := make([]saleEvent, 0)
	for si := range sales {
		for _, line := range sales[si].Lines {
			if line.ItemID == itemID {
				events = append(events, saleEvent{
					saleID: sales[si].ID,
					date:   sales[si].Date,
					line:   line,
				})
			}
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].date.Before(events[j].date)
	})
	return events
}
