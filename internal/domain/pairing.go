package domain

import "time"

// MaxPairingItems caps the number of entries in a PairingResult
const MaxPairingItems = 5

// Strategy names the path that produced a PairingResult
type Strategy string

const (
	StrategyScored  Strategy = "scored"
	StrategyKeyword Strategy = "keyword"
	StrategyDefault Strategy = "default"
)

// Direction names which catalog a query searches
type Direction string

const (
	DirectionFoodToWine Direction = "food_to_wine"
	DirectionWineToFood Direction = "wine_to_food"
)

// PairingResult is the answer to a pairing query.
// Items are wine or food names ranked best-first, never more than MaxPairingItems.
type PairingResult struct {
	Items     []string `json:"items"`
	Reasoning string   `json:"reasoning"`
	Strategy  Strategy `json:"strategy"`
}

// KeywordPairing maps a food keyword to classically paired wines
type KeywordPairing struct {
	Keyword string   `json:"keyword" yaml:"keyword"`
	Wines   []string `json:"wines" yaml:"wines"`
}

// CatalogData is the raw material a catalog is built from
type CatalogData struct {
	Wines    []WineProfile    `json:"wines" yaml:"wines"`
	Foods    []FoodProfile    `json:"foods" yaml:"foods"`
	Keywords []KeywordPairing `json:"keywords" yaml:"keywords"`
}

// ExpertPairing lists foods a wine is known to pair with
type ExpertPairing struct {
	Wine  string   `json:"wine"`
	Foods []string `json:"foods"`
}

// AddPairingRequest is the payload for contributing an expert pairing
type AddPairingRequest struct {
	Wine  string   `json:"wine" binding:"required"`
	Foods []string `json:"foods" binding:"required,min=1,dive,required"`
}

// Feedback is a user rating of a wine pairing
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId" binding:"required"`
	Wine      string    `json:"wine" binding:"required"`
	Food      string    `json:"food,omitempty"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comments  string    `json:"comments,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
