package costing

import "fmt"

// DiagnosticCode classifies a data-quality condition
type DiagnosticCode string

const (
	// DiagInvalidDate marks a transaction whose date could not be parsed
	DiagInvalidDate DiagnosticCode = "INVALID_DATE"
	// DiagUnknownItem marks a line referencing an item missing from the catalog
	DiagUnknownItem DiagnosticCode = "UNKNOWN_ITEM"
	// DiagDuplicateSerial marks a serial introduced by more than one purchase line
	DiagDuplicateSerial DiagnosticCode = "DUPLICATE_SERIAL"
	// DiagUnknownSerial marks a sold serial with no matching purchase
	DiagUnknownSerial DiagnosticCode = "UNKNOWN_SERIAL"
	// DiagOversold marks a depletion that ran past the available lots
	DiagOversold DiagnosticCode = "OVERSOLD"
)

// Diagnostic is a non-fatal data-quality finding surfaced alongside a numeric
// result. Diagnostics never abort a computation; each one corresponds to a
// documented fallback that was applied instead.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	ItemID  string         `json:"item_id,omitempty"`
	Ref     string         `json:"ref,omitempty"`
	Message string         `json:"message"`
}

func diagInvalidDate(ref, raw string) Diagnostic {
	return Diagnostic{
		Code:    DiagInvalidDate,
		Ref:     ref,
		Message: fmt.Sprintf("transaction %s has unparsable date %q and was excluded", ref, raw),
	}
}

func diagUnknownItem(itemID, ref string) Diagnostic {
	return Diagnostic{
		Code:    DiagUnknownItem,
		ItemID:  itemID,
		Ref:     ref,
		Message: fmt.Sprintf("item %s referenced by %s is not in the catalog", itemID, ref),
	}
}

func diagDuplicateSerial(itemID, serial string) Diagnostic {
	return Diagnostic{
		Code:    DiagDuplicateSerial,
		ItemID:  itemID,
		Ref:     serial,
		Message: fmt.Sprintf("serial %s of item %s appears in more than one purchase; first occurrence wins", serial, itemID),
	}
}

func diagUnknownSerial(itemID, serial string) Diagnostic {
	return Diagnostic{
		Code:    DiagUnknownSerial,
		ItemID:  itemID,
		Ref:     serial,
		Message: fmt.Sprintf("sold serial %s of item %s has no matching purchase; default cost applied", serial, itemID),
	}
}

func diagOversold(itemID, ref string) Diagnostic {
	return Diagnostic{
		Code:    DiagOversold,
		ItemID:  itemID,
		Ref:     ref,
		Message: fmt.Sprintf("demand for item %s exceeded available lots; shortfall priced at default cost", itemID),
	}
}
