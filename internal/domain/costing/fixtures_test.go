package costing

import "github.com/shopspring/decimal"

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func createTestItem(id string, openingStock, openingCost float64) Item {
	return Item{
		ID:              id,
		SKU:             "SKU-" + id,
		Name:            "Item " + id,
		Unit:            "pcs",
		OpeningStock:    dec(openingStock),
		OpeningUnitCost: dec(openingCost),
	}
}

func createSerializedItem(id string, openingCost float64) Item {
	item := createTestItem(id, 0, openingCost)
	item.Serialized = true
	return item
}

func createPurchase(id, date string, lines ...PurchaseLine) Purchase {
	return Purchase{
		ID:    id,
		Date:  ParseDate(date),
		Lines: lines,
	}
}

func purchaseLine(itemID string, qty, unitCost float64, serials ...string) PurchaseLine {
	return PurchaseLine{
		ItemID:   itemID,
		Quantity: dec(qty),
		UnitCost: dec(unitCost),
		Serials:  serials,
	}
}

func createSale(id, date string, lines ...SaleLine) Sale {
	return Sale{
		ID:    id,
		Date:  ParseDate(date),
		Lines: lines,
	}
}

func saleLine(itemID string, qty, unitPrice float64, serials ...string) SaleLine {
	return SaleLine{
		ItemID:    itemID,
		Quantity:  dec(qty),
		UnitPrice: dec(unitPrice),
		Serials:   serials,
	}
}
