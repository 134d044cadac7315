package domain

// Fixed enumerations for catalog fields. Create/update handlers reject
// values outside these sets.

const (
	CakeCategoryClassic = "Classic"
	CakeCategoryPremium = "Premium"
	CakeCategoryCustom  = "Custom"
)

var CakeCategories = map[string]bool{
	CakeCategoryClassic: true,
	CakeCategoryPremium: true,
	CakeCategoryCustom:  true,
}

const (
	BouquetSizeSmall  = "Small"
	BouquetSizeMedium = "Medium"
	BouquetSizeLarge  = "Large"
)

var BouquetSizes = map[string]bool{
	BouquetSizeSmall:  true,
	BouquetSizeMedium: true,
	BouquetSizeLarge:  true,
}

var PaintingMediums = map[string]bool{
	"Oil":         true,
	"Acrylic":     true,
	"Watercolor":  true,
	"Charcoal":    true,
	"Mixed Media": true,
}

// Custom-order select options, matching the public request form.
var CakeSizePreferences = map[string]bool{
	"small":      true,
	"medium":     true,
	"large":      true,
	"extraLarge": true,
}

var BudgetRanges = map[string]bool{
	"under250": true,
	"250-500":  true,
	"500-1000": true,
	"1000plus": true,
}

// Settings keys the site frontend reads. Keys outside this list are still
// accepted; these are only seeded so GET /api/settings has a stable shape.
var DefaultSettingKeys = []string{
	"logo",
	"aboutText",
	"phone",
	"email",
	"address",
	"hours",
	"instagram",
	"facebook",
}
