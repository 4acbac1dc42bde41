package domain

import "errors"

var (
	// ErrWineNotFound is returned when a wine is not in the catalog
	ErrWineNotFound = errors.New("wine not found in catalog")

	// ErrFoodNotFound is returned when a food is not in the catalog
	ErrFoodNotFound = errors.New("food not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidRating is returned when a feedback rating is outside 1..5
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrCatalogInvalid is returned when catalog data fails validation
	ErrCatalogInvalid = errors.New("invalid catalog data")

	// ErrCatalogSourceFailure is returned when a remote catalog cannot be fetched
	ErrCatalogSourceFailure = errors.New("catalog source request failed")

	// ErrPairingNotFound is returned when no expert pairing exists for a wine
	ErrPairingNotFound = errors.New("expert pairing not found")
)
