package usecase

import (
	"fmt"
	"math"
	"strings"

	"inventory-service/internal/item"
)

// fields is the validated, dereferenced form of the four mutable item fields.
type fields struct {
	name        string
	price       float64
	quantity    int64
	releaseYear int
}

// validateFields checks presence first and then values, so a request that
// omits a field is reported as missing even when another field is also invalid.
func (uc *implUseCase) validateFields(name *string, price *float64, quantity *int64, releaseYear *int) (fields, error) {
	if name == nil || price == nil || quantity == nil || releaseYear == nil {
		return fields{}, item.ErrMissingFields
	}

	f := fields{
		name:        strings.TrimSpace(*name),
		price:       *price,
		quantity:    *quantity,
		releaseYear: *releaseYear,
	}

	if f.name == "" {
		return fields{}, fmt.Errorf("%w: name must not be empty", item.ErrInvalidInput)
	}
	if math.IsNaN(f.price) || math.IsInf(f.price, 0) || f.price < 0 {
		return fields{}, fmt.Errorf("%w: price must be a non-negative number", item.ErrInvalidInput)
	}
	if f.quantity < 0 {
		return fields{}, fmt.Errorf("%w: quantity must be non-negative", item.ErrInvalidInput)
	}
	if err := ValidateReleaseYear(f.releaseYear, uc.now().Year()); err != nil {
		return fields{}, err
	}
	return f, nil
}

// ValidateReleaseYear reports whether year lies in [item.MinReleaseYear, currentYear].
func ValidateReleaseYear(year, currentYear int) error {
	if year < item.MinReleaseYear || year > currentYear {
		return fmt.Errorf("%w: release_year must be between %d and %d", item.ErrInvalidInput, item.MinReleaseYear, currentYear)
	}
	return nil
}
