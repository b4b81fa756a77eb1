package catalog

import (
	"github.com/NaveenSky123/manaraitubazaar/pkg/db/models"
	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	"github.com/shopspring/decimal"
)

// SeedProducts is the default Morthad branch catalogue, loaded into empty
// stores on boot. Prices are rupees per kg/liter for weighted units and per
// count otherwise.
func SeedProducts() []models.Product {
	products := []models.Product{
		// Vegetables
		product("tomato", "Tomato", "టమాటా", 30, enums.UnitKg, enums.ProductCategoryVegetables, 250, 250),
		product("onion", "Onion", "ఉల్లిపాయలు", 40, enums.UnitKg, enums.ProductCategoryVegetables, 250, 250),
		product("potato", "Potato", "బంగాళాదుంపలు", 35, enums.UnitKg, enums.ProductCategoryVegetables, 250, 250),
		product("brinjal", "Brinjal", "వంకాయలు", 40, enums.UnitKg, enums.ProductCategoryVegetables, 250, 250),
		product("okra", "Okra", "బెండకాయలు", 45, enums.UnitKg, enums.ProductCategoryVegetables, 250, 250),
		product("green-chilli", "Green Chilli", "పచ్చిమిర్చి", 60, enums.UnitKg, enums.ProductCategoryVegetables, 100, 100),
		product("coriander", "Coriander", "కొత్తిమీర", 15, enums.UnitBunch, enums.ProductCategoryVegetables, 1, 1),
		product("curry-leaves", "Curry Leaves", "కరివేపాకు", 10, enums.UnitBunch, enums.ProductCategoryVegetables, 1, 1),

		// Fruits
		product("banana", "Banana", "అరటిపండ్లు", 8, enums.UnitPiece, enums.ProductCategoryFruits, 6, 6),
		product("apple", "Apple", "ఆపిల్", 180, enums.UnitKg, enums.ProductCategoryFruits, 500, 250),
		product("mango", "Mango", "మామిడిపండ్లు", 120, enums.UnitKg, enums.ProductCategoryFruits, 500, 500),
		product("grapes", "Grapes", "ద్రాక్ష", 90, enums.UnitKg, enums.ProductCategoryFruits, 250, 250),

		// Flowers
		product("marigold", "Marigold", "బంతిపూలు", 80, enums.UnitKg, enums.ProductCategoryFlowers, 250, 250),
		product("chrysanthemum", "Chrysanthemum", "చామంతిపూలు", 120, enums.UnitKg, enums.ProductCategoryFlowers, 250, 250),
		product("rose", "Rose", "గులాబీ", 10, enums.UnitPiece, enums.ProductCategoryFlowers, 1, 1),

		// Groceries
		product("toor-dal", "Toor Dal", "కందిపప్పు", 160, enums.UnitKg, enums.ProductCategoryGroceries, 500, 500),
		product("sona-masoori-rice", "Sona Masoori Rice", "సోనామసూరి బియ్యం", 60, enums.UnitKg, enums.ProductCategoryGroceries, 1000, 1000),
		product("groundnut-oil", "Groundnut Oil", "వేరుశెనగ నూనె", 220, enums.UnitLiter, enums.ProductCategoryGroceries, 500, 500),
		product("sugar", "Sugar", "చక్కెర", 48, enums.UnitKg, enums.ProductCategoryGroceries, 500, 500),
		product("salt", "Salt", "ఉప్పు", 20, enums.UnitPacket, enums.ProductCategoryGroceries, 1, 1),

		// Milk products
		product("buffalo-milk", "Buffalo Milk", "గేదె పాలు", 80, enums.UnitLiter, enums.ProductCategoryMilk, 500, 500),
		product("curd", "Curd", "పెరుగు", 90, enums.UnitLiter, enums.ProductCategoryMilk, 500, 500),
		product("ghee", "Ghee", "నెయ్యి", 700, enums.UnitLiter, enums.ProductCategoryMilk, 250, 250),
		product("paneer", "Paneer", "పనీర్", 90, enums.UnitPacket, enums.ProductCategoryMilk, 1, 1),
	}
	for i := range products {
		products[i].Position = i + 1
	}
	return products
}

func product(id, name, nameTE string, price int64, unit enums.Unit, category enums.ProductCategory, minQty, incrementBy int64) models.Product {
	return models.Product{
		ID:          id,
		Name:        name,
		NameTE:      nameTE,
		Price:       decimal.NewFromInt(price),
		Unit:        unit,
		Category:    category,
		Image:       "/images/products/" + id + ".jpg",
		Available:   true,
		MinQuantity: minQty,
		IncrementBy: incrementBy,
	}
}
