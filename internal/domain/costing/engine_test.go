package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine(t *testing.T) {
	engine := NewEngine()

	t.Run("available serials come back in purchase order", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "2024-01-01", purchaseLine("B", 2, 100, "S1", "S2")),
			createPurchase("P2", "2024-01-02", purchaseLine("B", 1, 110, "S3")),
		}
		sales := []Sale{
			createSale("SA1", "2024-01-10", saleLine("B", 1, 150, "S2")),
		}

		serials, diags := engine.AvailableSerials("B", purchases, sales, "")
		assert.Equal(t, []string{"S1", "S3"}, serials)
		assert.Empty(t, diags)
	})

	t.Run("the entry points agree on the same snapshot", func(t *testing.T) {
		sale := createSale("S1", "2024-01-05", saleLine("A", 4, 10))
		sale.TotalCost = dec(40)
		sale.PaidAmount = dec(40)
		snap := &Snapshot{
			Items: []Item{createTestItem("A", 0, 5)},
			Purchases: []Purchase{
				createPurchase("P1", "2024-01-01", purchaseLine("A", 10, 5)),
			},
			Sales: []Sale{sale},
		}

		valuation, err := engine.StockValue(snap, ValuationOptions{AsOf: ParseDate("2024-01-31")})
		require.NoError(t, err)
		assert.True(t, valuation.Total.Equal(dec(30)))

		profit, err := engine.ProfitOfSale(&sale, snap)
		require.NoError(t, err)
		assert.True(t, profit.TotalProfit.Equal(dec(20)))

		status := engine.InvoiceStatusOf(&sale)
		assert.Equal(t, PaymentStatusPaid, status.Status)
	})

	t.Run("resync leaves status reads untouched until applied", func(t *testing.T) {
		sale := Sale{ID: "IV1", TotalCost: dec(100), PaidAmount: dec(0)}
		payments := []Payment{{ID: "PM1", InvoiceID: "IV1", Amount: dec(100)}}

		result := engine.ResyncInvoices([]string{"IV1"}, payments, []Sale{sale}, nil)
		require.Len(t, result.Sales, 1)

		// the stored field stays authoritative until the caller adopts the resync
		assert.Equal(t, PaymentStatusCredit, engine.InvoiceStatusOf(&sale).Status)
		assert.Equal(t, PaymentStatusPaid, engine.InvoiceStatusOf(&result.Sales[0]).Status)
	})
}
