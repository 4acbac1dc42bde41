package domain

import "context"

// Catalog is a read-only view over the wine and food reference tables
type Catalog interface {
	LookupWine(name string) (WineProfile, bool)
	LookupFood(name string) (FoodProfile, bool)
	Wines() []WineProfile
	Foods() []FoodProfile
	Keywords() []KeywordPairing
}

// CatalogSource loads catalog data from outside the process
type CatalogSource interface {
	Load(ctx context.Context) (*CatalogData, error)
}

// PairingRepository stores expert wine/food pairings
type PairingRepository interface {
	List(ctx context.Context) ([]ExpertPairing, error)
	Get(ctx context.Context, wine string) (*ExpertPairing, error)
	Add(ctx context.Context, wine string, foods []string) (*ExpertPairing, error)
}

// FeedbackRepository stores user feedback on pairings
type FeedbackRepository interface {
	Save(ctx context.Context, feedback *Feedback) error
	ListByWine(ctx context.Context, wine string) ([]Feedback, error)
}
