package costing

import "github.com/shopspring/decimal"

// DepletionResult is the outcome of consuming demand against a lot sequence.
type DepletionResult struct {
	ConsumedQty   decimal.Decimal // Quantity taken from lots
	ConsumedCost  decimal.Decimal // Cost of the consumed quantity at lot costs
	Shortfall     decimal.Decimal // Demand left after the lots were exhausted
	ShortfallCost decimal.Decimal // Shortfall priced at the fallback unit cost
}

// TotalCost returns the full cost basis of the demand, lots plus fallback.
func (r DepletionResult) TotalCost() decimal.Decimal {
	return r.ConsumedCost.Add(r.ShortfallCost)
}

// Oversold reports whether the lots could not cover the demand.
func (r DepletionResult) Oversold() bool {
	return r.Shortfall.IsPositive()
}

// Deplete consumes demand from lots in FIFO order, decrementing each lot's
// RemainingQty in place. For each lot it takes min(remaining, demand) and
// accumulates the cost at that lot's unit cost, stopping when the demand is
// met or the lots run out.
//
// If the lots are exhausted with demand left, the shortfall is priced at
// fallbackUnitCost. Overselling is a reporting signal, never an error: a lot's
// remaining quantity is monotonically non-increasing and never negative, and
// the caller always gets a usable cost basis back.
//
// Lots are per-query values (see BuildLots); a lot slice from one query must
// not be fed into another.
func Deplete(lots []CostLot, demand, fallbackUnitCost decimal.Decimal) DepletionResult {
	result := DepletionResult{
		ConsumedQty:   decimal.Zero,
		ConsumedCost:  decimal.Zero,
		Shortfall:     decimal.Zero,
		ShortfallCost: decimal.Zero,
	}
	remaining := demand
	for i := range lots {
		if !remaining.IsPositive() {
			break
		}
		lot := &lots[i]
		if !lot.RemainingQty.IsPositive() {
			continue
		}
		take := decimal.Min(remaining, lot.RemainingQty)
		lot.RemainingQty = lot.RemainingQty.Sub(take)
		result.ConsumedQty = result.ConsumedQty.Add(take)
		result.ConsumedCost = result.ConsumedCost.Add(take.Mul(lot.UnitCost))
		remaining = remaining.Sub(take)
	}
	if remaining.IsPositive() {
		result.Shortfall = remaining
		result.ShortfallCost = remaining.Mul(fallbackUnitCost)
	}
	return result
}
