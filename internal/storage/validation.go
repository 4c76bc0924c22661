package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/meguinhazeromiseria/scraper-mega/internal/model"
)

// Validation errors.
var (
	ErrNilContext        = errors.New("context cannot be nil")
	ErrEmptyString       = errors.New("string parameter cannot be empty")
	ErrNilParameter      = errors.New("parameter cannot be nil")
	ErrEmptySlice        = errors.New("slice cannot be empty")
	ErrInvalidLot        = errors.New("invalid lot")
	ErrInvalidCategoryID = errors.New("invalid category id")
)

// Category ids become table names, so they must be plain identifiers. The
// taxonomy validates its own ids; this guards against anything else reaching
// the SQL layer.
var identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateCategoryID(id model.CategoryID) error {
	if !identifierPattern.MatchString(string(id)) {
		return fmt.Errorf("%w: %q", ErrInvalidCategoryID, id)
	}
	return nil
}

func validateLots(lots []model.Lot) error {
	if lots == nil {
		return fmt.Errorf("%w: lots", ErrNilParameter)
	}
	if len(lots) == 0 {
		return fmt.Errorf("%w: lots", ErrEmptySlice)
	}

	for i := range lots {
		if err := validateLot(&lots[i]); err != nil {
			return fmt.Errorf("lot at index %d: %w", i, err)
		}
	}
	return nil
}

func validateLot(lot *model.Lot) error {
	if lot.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLot)
	}
	return nil
}
