package costing

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CostLot is a quantity of a fungible item received together at one unit cost.
// Lots are derived values: they are rebuilt from the purchase history on every
// query and discarded afterwards, never cached between calls.
type CostLot struct {
	SourceID     string          // ID of the purchase that introduced the lot
	PurchaseDate Date            // Origin date (parent purchase's date)
	OriginalQty  decimal.Decimal // Quantity received
	UnitCost     decimal.Decimal // Cost per unit
	RemainingQty decimal.Decimal // Quantity left after replaying consuming events
}

// Value returns the remaining value of the lot.
func (l *CostLot) Value() decimal.Decimal {
	return l.RemainingQty.Mul(l.UnitCost)
}

// BuildLots flattens the purchase lines for one item into an ordered lot
// sequence: ascending by purchase date, ties broken by original slice order.
// The stable tie-break is required so that repeated calls with the same
// snapshot produce identical FIFO consumption.
//
// Purchases whose date failed to parse do not participate in FIFO ordering;
// they are excluded and reported as a diagnostic.
func BuildLots(itemID string, purchases []Purchase) ([]CostLot, []Diagnostic) {
	var diags []Diagnostic
	lots := make([]CostLot, 0)
	for pi := range purchases {
		p := &purchases[pi]
		carries := false
		for _, line := range p.Lines {
			if line.ItemID != itemID {
				continue
			}
			carries = true
			if !p.Date.Valid {
				continue
			}
			lots = append(lots, CostLot{
				SourceID:     p.ID,
				PurchaseDate: p.Date,
				OriginalQty:  line.Quantity,
				UnitCost:     line.UnitCost,
				RemainingQty: line.Quantity,
			})
		}
		if carries && !p.Date.Valid {
			diags = append(diags, diagInvalidDate(p.ID, p.Date.Raw()))
		}
	}
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].PurchaseDate.Before(lots[j].PurchaseDate)
	})
	return lots, diags
}

// TotalRemaining sums the remaining quantity across lots.
func TotalRemaining(lots []CostLot) decimal.Decimal {
	total := decimal.Zero
	for i := range lots {
		total = total.Add(lots[i].RemainingQty)
	}
	return total
}

// RemainingValue sums the remaining value across lots.
func RemainingValue(lots []CostLot) decimal.Decimal {
	total := decimal.Zero
	for i := range lots {
		total = total.Add(lots[i].Value())
	}
	return total
}
