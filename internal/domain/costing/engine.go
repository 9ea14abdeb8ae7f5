package costing

// Engine bundles the costing services behind the four query entry points the
// surrounding application calls. It is stateless and safe for concurrent use
// against immutable snapshots; every query replays from the snapshot and
// discards all derived state on return.
type Engine struct {
	valuation      *StockValuationService
	profitability  *SaleProfitabilityService
	reconciliation *InvoiceReconciliationService
}

// NewEngine creates a new Engine
func NewEngine() *Engine {
	return &Engine{
		valuation:      NewStockValuationService(),
		profitability:  NewSaleProfitabilityService(),
		reconciliation: NewInvoiceReconciliationService(),
	}
}

// StockValue values remaining stock as of a point in time.
func (e *Engine) StockValue(snap *Snapshot, opts ValuationOptions) (*ValuationResult, error) {
	return e.valuation.StockValue(snap, opts)
}

// ProfitOfSale computes COGS and profit for one sale.
func (e *Engine) ProfitOfSale(sale *Sale, snap *Snapshot) (*ProfitResult, error) {
	return e.profitability.ProfitOfSale(sale, snap)
}

// InvoiceStatusOf derives the settlement status of an invoice.
func (e *Engine) InvoiceStatusOf(invoice Invoice) InvoiceStatus {
	return e.reconciliation.StatusOf(invoice)
}

// AvailableSerials lists the serial numbers of an item that were purchased
// but not yet sold, optionally treating one sale as not-yet-committed.
func (e *Engine) AvailableSerials(itemID string, purchases []Purchase, sales []Sale, excludeSaleID string) ([]string, []Diagnostic) {
	lots, diags := AvailableSerialLots(itemID, purchases, sales, excludeSaleID)
	serials := make([]string, 0, len(lots))
	for _, lot := range lots {
		serials = append(serials, lot.Serial)
	}
	return serials, diags
}

// ResyncInvoices recomputes stored paid amounts from payment records.
func (e *Engine) ResyncInvoices(invoiceIDs []string, payments []Payment, sales []Sale, purchases []Purchase) ResyncResult {
	return e.reconciliation.Resync(invoiceIDs, payments, sales, purchases)
}
