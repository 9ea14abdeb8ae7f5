package costing

import "github.com/shopspring/decimal"

// SerialLot is a single serialized unit and its acquisition cost. For
// serialized items the serial is its own lot: cost attribution is
// identity-based, not date-ordered.
type SerialLot struct {
	Serial       string
	UnitCost     decimal.Decimal
	PurchaseDate Date
}

// PurchasedSerials collects every (serial, unit cost, purchase date) triple
// introduced for the item across all purchase lines, in original order. A
// serial entered by more than one purchase is kept once (first occurrence
// wins) and reported as a diagnostic; duplicates are a data-quality condition,
// not fatal.
func PurchasedSerials(itemID string, purchases []Purchase) ([]SerialLot, []Diagnostic) {
	var diags []Diagnostic
	seen := make(map[string]struct{})
	lots := make([]SerialLot, 0)
	for pi := range purchases {
		p := &purchases[pi]
		for _, line := range p.Lines {
			if line.ItemID != itemID {
				continue
			}
			for _, serial := range line.Serials {
				if _, dup := seen[serial]; dup {
					diags = append(diags, diagDuplicateSerial(itemID, serial))
					continue
				}
				seen[serial] = struct{}{}
				lots = append(lots, SerialLot{
					Serial:       serial,
					UnitCost:     line.UnitCost,
					PurchaseDate: p.Date,
				})
			}
		}
	}
	return lots, diags
}

// SoldSerials returns the flat set of serial strings marked sold for the item
// across all sale lines. When excludeSaleID is non-empty that sale is omitted
// from the sold side, so its serials count as available again while it is
// being edited.
func SoldSerials(itemID string, sales []Sale, excludeSaleID string) map[string]struct{} {
	sold := make(map[string]struct{})
	for si := range sales {
		s := &sales[si]
		if excludeSaleID != "" && s.ID == excludeSaleID {
			continue
		}
		for _, line := range s.Lines {
			if line.ItemID != itemID {
				continue
			}
			for _, serial := range line.Serials {
				sold[serial] = struct{}{}
			}
		}
	}
	return sold
}

// AvailableSerialLots computes the set-difference of purchased versus sold
// serials for the item, preserving purchase order.
func AvailableSerialLots(itemID string, purchases []Purchase, sales []Sale, excludeSaleID string) ([]SerialLot, []Diagnostic) {
	purchased, diags := PurchasedSerials(itemID, purchases)
	sold := SoldSerials(itemID, sales, excludeSaleID)
	available := make([]SerialLot, 0, len(purchased))
	for _, lot := range purchased {
		if _, isSold := sold[lot.Serial]; !isSold {
			available = append(available, lot)
		}
	}
	return available, diags
}

// SerialCost resolves the acquisition cost of one sold serial by exact string
// match against the purchased triples. A serial with no purchase occurrence
// falls back to the item's default cost and emits a diagnostic.
func SerialCost(itemID, serial string, purchased []SerialLot, fallback decimal.Decimal) (decimal.Decimal, []Diagnostic) {
	for _, lot := range purchased {
		if lot.Serial == serial {
			return lot.UnitCost, nil
		}
	}
	return fallback, []Diagnostic{diagUnknownSerial(itemID, serial)}
}
