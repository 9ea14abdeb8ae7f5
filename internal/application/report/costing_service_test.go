package report

import (
	"context"
	"testing"

	"github.com/erp/costing/internal/domain/costing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testSnapshot() *costing.Snapshot {
	return &costing.Snapshot{
		Items: []costing.Item{{
			ID:              "A",
			Name:            "Widget",
			OpeningStock:    decimal.Zero,
			OpeningUnitCost: decimal.NewFromInt(5),
		}},
		Purchases: []costing.Purchase{{
			ID:   "P1",
			Date: costing.ParseDate("2024-01-01"),
			Lines: []costing.PurchaseLine{{
				ItemID:   "A",
				Quantity: decimal.NewFromInt(10),
				UnitCost: decimal.NewFromInt(5),
			}},
		}},
		Sales: []costing.Sale{{
			ID:   "S1",
			Date: costing.ParseDate("2024-01-05"),
			Lines: []costing.SaleLine{{
				ItemID:    "A",
				Quantity:  decimal.NewFromInt(4),
				UnitPrice: decimal.NewFromInt(10),
			}},
		}},
	}
}

func TestCostingService(t *testing.T) {
	service := NewCostingService(zap.NewNop())
	ctx := context.Background()

	t.Run("stock value delegates to the engine", func(t *testing.T) {
		result, err := service.StockValue(ctx, testSnapshot(), costing.ValuationOptions{
			AsOf: costing.ParseDate("2024-01-31"),
		})
		require.NoError(t, err)
		assert.True(t, result.Total.Equal(decimal.NewFromInt(30)))
	})

	t.Run("profit of sale delegates to the engine", func(t *testing.T) {
		snap := testSnapshot()
		result, err := service.ProfitOfSale(ctx, &snap.Sales[0], snap)
		require.NoError(t, err)
		assert.True(t, result.TotalProfit.Equal(decimal.NewFromInt(20)))
	})

	t.Run("invoice status works from stored fields alone", func(t *testing.T) {
		status := service.InvoiceStatus("IV1", decimal.NewFromInt(1000), decimal.NewFromInt(400))
		assert.Equal(t, costing.PaymentStatusPartial, status.Status)
		assert.True(t, status.Balance.Equal(decimal.NewFromInt(600)))
	})

	t.Run("nil logger is tolerated", func(t *testing.T) {
		s := NewCostingService(nil)
		_, err := s.StockValue(ctx, testSnapshot(), costing.ValuationOptions{
			AsOf: costing.ParseDate("2024-01-31"),
		})
		assert.NoError(t, err)
	})
}
