package catalog

import "github.com/winepair/backend/internal/domain"

// Default pairings returned when nothing in the catalogs applies
var (
	DefaultWines = []string{"Pinot Noir", "Chardonnay", "Sauvignon Blanc"}
	DefaultFoods = []string{"chicken", "pasta", "cheese"}
)

// builtinWines is the reference wine table, in ranking order
var builtinWines = []domain.WineProfile{
	{
		Name: "Cabernet Sauvignon", Type: domain.WineRed, Body: domain.BodyFull,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelHigh,
		Description: "Full-bodied red with bold tannins, black currant, and oak",
	},
	{
		Name: "Pinot Noir", Type: domain.WineRed, Body: domain.BodyLight,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelHigh, Tannins: domain.LevelLow,
		Description: "Light to medium-bodied red with red fruit, earthy, and silky",
	},
	{
		Name: "Malbec", Type: domain.WineRed, Body: domain.BodyFull,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelMedium,
		Description: "Medium to full-bodied red with dark fruit and smooth finish",
	},
	{
		Name: "Syrah", Type: domain.WineRed, Body: domain.BodyFull,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelHigh,
		Description: "Full-bodied red with dark fruit, pepper, and smoky notes",
	},
	{
		Name: "Chardonnay", Type: domain.WineWhite, Body: domain.BodyFull,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelLow,
		Description: "Full-bodied white with apple, butter, and vanilla notes",
	},
	{
		Name: "Sauvignon Blanc", Type: domain.WineWhite, Body: domain.BodyLight,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelHigh, Tannins: domain.LevelLow,
		Description: "Crisp white with citrus, grass, and mineral notes",
	},
	{
		Name: "Pinot Grigio", Type: domain.WineWhite, Body: domain.BodyLight,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelHigh, Tannins: domain.LevelLow,
		Description: "Light white with citrus and floral notes",
	},
	{
		Name: "Riesling", Type: domain.WineWhite, Body: domain.BodyLight,
		Sweetness: domain.SweetnessOffDry, Acidity: domain.LevelHigh, Tannins: domain.LevelLow,
		Description: "Aromatic white with apple, honey, and floral notes",
	},
	{
		Name: "Champagne", Type: domain.WineSparkling, Body: domain.BodyLight,
		Sweetness: domain.SweetnessDry, Acidity: domain.LevelHigh, Tannins: domain.LevelLow,
		Description: "Sparkling with citrus, toast, and elegance",
	},
	{
		Name: "Port", Type: domain.WineDessert, Body: domain.BodyFull,
		Sweetness: domain.SweetnessSweet, Acidity: domain.LevelLow, Tannins: domain.LevelHigh,
		Description: "Fortified sweet wine with dark fruit and chocolate",
	},
}

var builtinFoods = []domain.FoodProfile{
	{Name: "steak", Category: domain.CategoryRedMeat, Intensity: domain.IntensityBold, Preparation: "grilled", Flavors: []string{"beefy", "charred", "umami"}},
	{Name: "salmon", Category: domain.CategoryFish, Intensity: domain.IntensityMedium, Preparation: "grilled", Flavors: []string{"oily", "rich", "delicate"}},
	{Name: "chicken", Category: "poultry", Intensity: domain.IntensityLight, Preparation: "roasted", Flavors: []string{"mild", "tender", "versatile"}},
	{Name: "pasta", Category: "carbohydrate", Intensity: domain.IntensityMedium, Preparation: "boiled", Flavors: []string{"starchy", "neutral", "comforting"}},
	{Name: "cheese", Category: "dairy", Intensity: domain.IntensityBold, Preparation: "aged", Flavors: []string{"creamy", "salty", "complex"}},
	{Name: "chocolate", Category: domain.CategoryDessert, Intensity: domain.IntensityBold, Preparation: "dark", Flavors: []string{"sweet", "bitter", "rich"}},
}

// builtinKeywords is searched in order; the first matching keyword wins
var builtinKeywords = []domain.KeywordPairing{
	{Keyword: "steak", Wines: []string{"Cabernet Sauvignon", "Malbec", "Syrah"}},
	{Keyword: "beef", Wines: []string{"Cabernet Sauvignon", "Malbec", "Syrah"}},
	{Keyword: "lamb", Wines: []string{"Syrah", "Cabernet Sauvignon", "Pinot Noir"}},
	{Keyword: "pork", Wines: []string{"Pinot Noir", "Riesling", "Chardonnay"}},
	{Keyword: "chicken", Wines: []string{"Chardonnay", "Pinot Noir", "Sauvignon Blanc"}},
	{Keyword: "duck", Wines: []string{"Pinot Noir", "Syrah"}},
	{Keyword: "salmon", Wines: []string{"Pinot Noir", "Chardonnay", "Sauvignon Blanc"}},
	{Keyword: "fish", Wines: []string{"Sauvignon Blanc", "Pinot Grigio", "Chardonnay"}},
	{Keyword: "seafood", Wines: []string{"Chardonnay", "Sauvignon Blanc", "Champagne"}},
	{Keyword: "oyster", Wines: []string{"Champagne", "Sauvignon Blanc"}},
	{Keyword: "pasta", Wines: []string{"Pinot Noir", "Chardonnay", "Pinot Grigio"}},
	{Keyword: "pizza", Wines: []string{"Malbec", "Pinot Noir"}},
	{Keyword: "mushroom", Wines: []string{"Pinot Noir", "Chardonnay"}},
	{Keyword: "cheese", Wines: []string{"Port", "Cabernet Sauvignon", "Riesling"}},
	{Keyword: "spicy", Wines: []string{"Riesling", "Pinot Grigio"}},
	{Keyword: "chocolate", Wines: []string{"Port", "Malbec"}},
	{Keyword: "dessert", Wines: []string{"Port", "Riesling", "Champagne"}},
}

// BuiltinData returns a copy of the reference data set
func BuiltinData() domain.CatalogData {
	data := domain.CatalogData{
		Wines:    make([]domain.WineProfile, len(builtinWines)),
		Foods:    make([]domain.FoodProfile, len(builtinFoods)),
		Keywords: make([]domain.KeywordPairing, len(builtinKeywords)),
	}
	copy(data.Wines, builtinWines)
	copy(data.Foods, builtinFoods)
	copy(data.Keywords, builtinKeywords)
	return data
}

// BuiltinKeywords returns a copy of the reference keyword table
func BuiltinKeywords() []domain.KeywordPairing {
	return BuiltinData().Keywords
}

// Default returns the catalog built from the reference data set
func Default() *Catalog {
	return MustNew(BuiltinData())
}

var builtinExpertPairings = []domain.ExpertPairing{
	{Wine: "Cabernet Sauvignon", Foods: []string{"Steak", "Lamb"}},
	{Wine: "Chardonnay", Foods: []string{"Chicken", "Seafood"}},
	{Wine: "Pinot Noir", Foods: []string{"Duck", "Mushrooms"}},
}

// BuiltinExpertPairings returns a copy of the seed expert pairings
func BuiltinExpertPairings() []domain.ExpertPairing {
	out := make([]domain.ExpertPairing, len(builtinExpertPairings))
	for i, p := range builtinExpertPairings {
		out[i] = domain.ExpertPairing{Wine: p.Wine, Foods: append([]string(nil), p.Foods...)}
	}
	return out
}
