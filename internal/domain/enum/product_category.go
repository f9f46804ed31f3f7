package enum

// ProductCategory classifies the drinks sold at the front desk.
type ProductCategory string

const (
	CategoryEnergyDrink  ProductCategory = "BEBIDA_ENERGETICA"
	CategoryNaturalDrink ProductCategory = "BEBIDA_NATURAL"
	CategorySportsDrink  ProductCategory = "BEBIDA_ESPORTIVA"
)

// ProductCategories returns all valid categories.
func ProductCategories() []ProductCategory {
	return []ProductCategory{CategoryEnergyDrink, CategoryNaturalDrink, CategorySportsDrink}
}

func (c ProductCategory) String() string {
	return string(c)
}

// Valid reports whether the category is one of the known values.
func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryEnergyDrink, CategoryNaturalDrink, CategorySportsDrink:
		return true
	}
	return false
}
