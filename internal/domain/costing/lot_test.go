package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLots(t *testing.T) {
	t.Run("orders lots ascending by purchase date", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P2", "2024-01-05", purchaseLine("A", 5, 6)),
			createPurchase("P1", "2024-01-01", purchaseLine("A", 10, 5)),
		}

		lots, diags := BuildLots("A", purchases)
		require.Len(t, lots, 2)
		assert.Empty(t, diags)
		assert.Equal(t, "P1", lots[0].SourceID)
		assert.Equal(t, "P2", lots[1].SourceID)
	})

	t.Run("date ties keep original sequence", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "2024-01-01", purchaseLine("A", 10, 5)),
			createPurchase("P2", "2024-01-01", purchaseLine("A", 5, 6)),
			createPurchase("P3", "2024-01-01", purchaseLine("A", 3, 7)),
		}

		lots, _ := BuildLots("A", purchases)
		require.Len(t, lots, 3)
		assert.Equal(t, "P1", lots[0].SourceID)
		assert.Equal(t, "P2", lots[1].SourceID)
		assert.Equal(t, "P3", lots[2].SourceID)
	})

	t.Run("lots start with remaining equal to original quantity", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "2024-01-01", purchaseLine("A", 10, 5)),
		}

		lots, _ := BuildLots("A", purchases)
		require.Len(t, lots, 1)
		assert.True(t, lots[0].RemainingQty.Equal(lots[0].OriginalQty))
		assert.True(t, lots[0].RemainingQty.Equal(dec(10)))
		assert.True(t, lots[0].Value().Equal(dec(50)))
	})

	t.Run("ignores lines of other items", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "2024-01-01",
				purchaseLine("A", 10, 5),
				purchaseLine("B", 3, 9),
			),
		}

		lots, _ := BuildLots("A", purchases)
		require.Len(t, lots, 1)
		assert.True(t, lots[0].UnitCost.Equal(dec(5)))
	})

	t.Run("excludes purchases with unparsable dates and reports them", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "2024-01-01", purchaseLine("A", 10, 5)),
			createPurchase("P2", "not-a-date", purchaseLine("A", 5, 6)),
		}

		lots, diags := BuildLots("A", purchases)
		require.Len(t, lots, 1)
		assert.Equal(t, "P1", lots[0].SourceID)
		require.Len(t, diags, 1)
		assert.Equal(t, DiagInvalidDate, diags[0].Code)
		assert.Equal(t, "P2", diags[0].Ref)
	})

	t.Run("no diagnostic for invalid-dated purchases of other items", func(t *testing.T) {
		purchases := []Purchase{
			createPurchase("P1", "bad-date", purchaseLine("B", 5, 6)),
		}

		lots, diags := BuildLots("A", purchases)
		assert.Empty(t, lots)
		assert.Empty(t, diags)
	})

	t.Run("empty purchase list yields no lots", func(t *testing.T) {
		lots, diags := BuildLots("A", nil)
		assert.Empty(t, lots)
		assert.Empty(t, diags)
	})
}
