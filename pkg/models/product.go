package models

// Category is one of the six fixed product categories.
type Category string

const (
	CategoryStone     Category = "Stone"
	CategoryRudraksha Category = "Rudraksha"
	CategoryBracelet  Category = "Bracelet"
	CategoryTemple    Category = "Temple & Consecrated"
	CategoryHealth    Category = "Health & Immunity"
	CategoryYantra    Category = "Yantra"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryStone,
	CategoryRudraksha,
	CategoryBracelet,
	CategoryTemple,
	CategoryHealth,
	CategoryYantra,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// ProductImage references the catalog image for a product.
type ProductImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Product is an immutable catalog record, seeded at startup.
type Product struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	LongDescription string       `json:"long_description"`
	Price           float64      `json:"price"`
	Category        Category     `json:"category"`
	Image           ProductImage `json:"image"`
}
