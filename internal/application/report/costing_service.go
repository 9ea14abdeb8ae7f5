package report

import (
	"context"

	"github.com/erp/costing/internal/domain/costing"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CostingService exposes the costing engine's query operations to transports.
// It adds observability around the pure domain calls; all semantics live in
// the domain layer. The service is stateless and safe for concurrent use.
type CostingService struct {
	engine *costing.Engine
	logger *zap.Logger
}

// NewCostingService creates a new CostingService
func NewCostingService(logger *zap.Logger) *CostingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CostingService{
		engine: costing.NewEngine(),
		logger: logger,
	}
}

// StockValue values remaining stock as of a point in time.
func (s *CostingService) StockValue(ctx context.Context, snap *costing.Snapshot, opts costing.ValuationOptions) (*costing.ValuationResult, error) {
	result, err := s.engine.StockValue(snap, opts)
	if err != nil {
		return nil, err
	}
	s.logDiagnostics(ctx, "stock valuation", result.Diagnostics)
	return result, nil
}

// ProfitOfSale computes COGS and profit for one sale.
func (s *CostingService) ProfitOfSale(ctx context.Context, sale *costing.Sale, snap *costing.Snapshot) (*costing.ProfitResult, error) {
	result, err := s.engine.ProfitOfSale(sale, snap)
	if err != nil {
		return nil, err
	}
	s.logDiagnostics(ctx, "sale profitability", result.Diagnostics)
	return result, nil
}

// storedInvoice adapts the stored fields of any invoice record to the
// reconciliation contract.
type storedInvoice struct {
	id    string
	total decimal.Decimal
	paid  decimal.Decimal
}

func (r storedInvoice) InvoiceID() string             { return r.id }
func (r storedInvoice) InvoiceTotal() decimal.Decimal { return r.total }
func (r storedInvoice) InvoicePaid() decimal.Decimal  { return r.paid }

// InvoiceStatus derives the settlement status from stored invoice fields.
func (s *CostingService) InvoiceStatus(id string, totalCost, paidAmount decimal.Decimal) costing.InvoiceStatus {
	return s.engine.InvoiceStatusOf(storedInvoice{id: id, total: totalCost, paid: paidAmount})
}

// AvailableSerials lists serials purchased but not yet sold for an item.
func (s *CostingService) AvailableSerials(ctx context.Context, itemID string, purchases []costing.Purchase, sales []costing.Sale, excludeSaleID string) ([]string, error) {
	serials, diags := s.engine.AvailableSerials(itemID, purchases, sales, excludeSaleID)
	s.logDiagnostics(ctx, "available serials", diags)
	return serials, nil
}

// ResyncInvoices recomputes stored paid amounts from payment records.
func (s *CostingService) ResyncInvoices(ctx context.Context, invoiceIDs []string, payments []costing.Payment, sales []costing.Sale, purchases []costing.Purchase) costing.ResyncResult {
	result := s.engine.ResyncInvoices(invoiceIDs, payments, sales, purchases)
	s.logger.Debug("invoices resynced",
		zap.Int("requested", len(invoiceIDs)),
		zap.Int("sales_updated", len(result.Sales)),
		zap.Int("purchases_updated", len(result.Purchases)),
	)
	return result
}

// logDiagnostics surfaces data-quality findings without affecting the result.
func (s *CostingService) logDiagnostics(_ context.Context, op string, diags []costing.Diagnostic) {
	for _, d := range diags {
		s.logger.Warn("data-quality condition",
			zap.String("operation", op),
			zap.String("code", string(d.Code)),
			zap.String("item_id", d.ItemID),
			zap.String("ref", d.Ref),
			zap.String("detail", d.Message),
		)
	}
}
