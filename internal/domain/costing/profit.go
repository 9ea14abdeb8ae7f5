package costing

import (
	"sort"

	"github.com/erp/costing/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemProfit is the line-level outcome for one item of the evaluated sale.
type ItemProfit struct {
	COGS    decimal.Decimal `json:"cogs"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
}

// ProfitResult is the profitability of a single sale.
type ProfitResult struct {
	TotalProfit decimal.Decimal       `json:"total_profit"`
	ItemProfits map[string]ItemProfit `json:"item_profits"`
	Diagnostics []Diagnostic          `json:"diagnostics,omitempty"`
}

// SaleProfitabilityService computes cost of goods sold and profit for one
// sale by reconstructing lot state as it stood immediately before that sale.
type SaleProfitabilityService struct{}

// NewSaleProfitabilityService creates a new SaleProfitabilityService
func NewSaleProfitabilityService() *SaleProfitabilityService {
	return &SaleProfitabilityService{}
}

// ProfitOfSale computes line-level and aggregate COGS and profit for the sale.
//
// Fungible lines build lots from ALL purchases, unfiltered by date: a lot
// dated after the sale is still reachable when earlier lots run short. Prior
// consumption replays only sales strictly earlier than this sale's date,
// excluding the sale itself. This is narrower than the inclusive filter
// used by stock valuation. The target line is then depleted from what
// remains, with the shortfall priced at the item's default cost.
//
// Serialized lines are costed by serial identity and need no date filtering.
//
// The sale-level discount is deducted from total profit directly, not treated
// as a COGS adjustment.
func (s *SaleProfitabilityService) ProfitOfSale(sale *Sale, snap *Snapshot) (*ProfitResult, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	if sale == nil || len(sale.Lines) == 0 {
		return nil, shared.ErrInvalidSale
	}

	result := &ProfitResult{
		TotalProfit: decimal.Zero,
		ItemProfits: make(map[string]ItemProfit, len(sale.Lines)),
	}

	lineProfits := decimal.Zero
	for _, line := range sale.Lines {
		if line.ItemID == "" || !line.Quantity.IsPositive() {
			result.ItemProfits[line.ItemID] = ItemProfit{
				COGS:    decimal.Zero,
				Revenue: decimal.Zero,
				Profit:  decimal.Zero,
			}
			continue
		}

		item, ok := snap.ItemByID(line.ItemID)
		fallback := decimal.Zero
		serialized := false
		if ok {
			fallback = item.FallbackUnitCost()
			serialized = item.Serialized
		} else {
			result.Diagnostics = append(result.Diagnostics, diagUnknownItem(line.ItemID, sale.ID))
		}

		var cogs decimal.Decimal
		if serialized {
			cogs = s.serializedLineCOGS(line, snap.Purchases, fallback, result)
		} else {
			cogs = s.fungibleLineCOGS(sale, line, snap, fallback, result)
		}

		revenue := line.UnitPrice.Mul(line.Quantity)
		profit := revenue.Sub(cogs)
		result.ItemProfits[line.ItemID] = ItemProfit{
			COGS:    cogs,
			Revenue: revenue,
			Profit:  profit,
		}
		lineProfits = lineProfits.Add(profit)
	}

	discount := sale.Discount.AmountOn(sale.SubTotal)
	result.TotalProfit = lineProfits.Sub(discount)
	return result, nil
}

// serializedLineCOGS sums the per-serial acquisition costs of the sold units.
func (s *SaleProfitabilityService) serializedLineCOGS(line SaleLine, purchases []Purchase, fallback decimal.Decimal, result *ProfitResult) decimal.Decimal {
	purchased, diags := PurchasedSerials(line.ItemID, purchases)
	result.Diagnostics = append(result.Diagnostics, diags...)

	cogs := decimal.Zero
	for _, serial := range line.Serials {
		cost, costDiags := SerialCost(line.ItemID, serial, purchased, fallback)
		result.Diagnostics = append(result.Diagnostics, costDiags...)
		cogs = cogs.Add(cost)
	}
	return cogs
}

// fungibleLineCOGS replays strictly-prior sales onto a fresh lot sequence and
// then consumes the target line from the reconstructed state.
func (s *SaleProfitabilityService) fungibleLineCOGS(sale *Sale, line SaleLine, snap *Snapshot, fallback decimal.Decimal, result *ProfitResult) decimal.Decimal {
	lots, diags := BuildLots(line.ItemID, snap.Purchases)
	result.Diagnostics = append(result.Diagnostics, diags...)

	for _, prior := range salesStrictlyBefore(snap.Sales, sale) {
		for _, priorLine := range prior.Lines {
			if priorLine.ItemID != line.ItemID {
				continue
			}
			// Prior shortfalls are irrelevant here: once the lots are empty
			// the earlier sale consumed nothing more.
			Deplete(lots, priorLine.Quantity, fallback)
		}
	}

	dep := Deplete(lots, line.Quantity, fallback)
	if dep.Oversold() {
		result.Diagnostics = append(result.Diagnostics, diagOversold(line.ItemID, sale.ID))
	}
	return dep.TotalCost()
}

// salesStrictlyBefore returns the sales dated strictly earlier than the target
// sale, never the target itself, ascending by date with stable ties.
// Same-instant sales are excluded: the profit replay wants strictly prior
// transactions, unlike the end-of-day cutoff used for valuation.
func salesStrictlyBefore(sales []Sale, target *Sale) []*Sale {
	prior := make([]*Sale, 0, len(sales))
	for i := range sales {
		s := &sales[i]
		if s.ID == target.ID {
			continue
		}
		if s.Date.Before(target.Date) {
			prior = append(prior, s)
		}
	}
	sort.SliceStable(prior, func(i, j int) bool {
		return prior[i].Date.Before(prior[j].Date)
	})
	return prior
}
