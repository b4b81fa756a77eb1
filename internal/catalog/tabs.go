package catalog

import "github.com/NaveenSky123/manaraitubazaar/pkg/enums"

// Tab is a storefront browse tab. The fruits tab merges the fruits and
// flowers categories into one surface.
type Tab struct {
	ID         string                  `json:"id"`
	Label      string                  `json:"label"`
	LabelTE    string                  `json:"label_te"`
	Categories []enums.ProductCategory `json:"-"`
}

var tabs = []Tab{
	{
		ID:         "vegetables",
		Label:      "Vegetables",
		LabelTE:    "కూరగాయలు",
		Categories: []enums.ProductCategory{enums.ProductCategoryVegetables},
	},
	{
		ID:         "fruits",
		Label:      "Fruits & Flowers",
		LabelTE:    "పండ్లు & పూలు",
		Categories: []enums.ProductCategory{enums.ProductCategoryFruits, enums.ProductCategoryFlowers},
	},
	{
		ID:         "groceries",
		Label:      "Groceries",
		LabelTE:    "కిరాణా",
		Categories: []enums.ProductCategory{enums.ProductCategoryGroceries},
	},
	{
		ID:         "milk",
		Label:      "Milk Products",
		LabelTE:    "పాల ఉత్పత్తులు",
		Categories: []enums.ProductCategory{enums.ProductCategoryMilk},
	},
}

// Tabs returns the browse tabs in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// TabByID resolves a tab by its identifier.
func TabByID(id string) (Tab, bool) {
	for _, tab := range tabs {
		if tab.ID == id {
			return tab, true
		}
	}
	return Tab{}, false
}
