// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-performance/backend/internal/application/adapter"
	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
)

const (
	// MaxClientNameLength is the maximum number of characters in a client last name.
	MaxClientNameLength = 100

	// MaxNotesLength is the maximum number of characters in sale notes.
	MaxNotesLength = 1000
)

// SaleFields holds the user-entered fields of a sale.
type SaleFields struct {
	Date           time.Time
	ClientLastName string
	NumberOfTours  int
	ManagerName    string
	SaleAmount     decimal.Decimal
	SaleType       entity.SaleType
	Notes          string
	LeadNumber     string
	FDI            string
	FDIGivenPoints decimal.Decimal
}

// validateSaleFields checks the user-entered fields of a sale.
func validateSaleFields(fields SaleFields) error {
	if fields.Date.IsZero() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"sale date is required",
			domainerror.ErrInvalidSaleDate,
		)
	}

	name := strings.TrimSpace(fields.ClientLastName)
	if name == "" {
		return domainerror.NewSaleError(
			domainerror.ErrCodeClientNameRequired,
			"client last name is required",
			domainerror.ErrClientNameRequired,
		)
	}
	if utf8.RuneCountInString(name) > MaxClientNameLength {
		return domainerror.NewSaleError(
			domainerror.ErrCodeClientNameTooLong,
			fmt.Sprintf("client last name must be at most %d characters", MaxClientNameLength),
			domainerror.ErrClientNameTooLong,
		)
	}

	if !fields.SaleType.IsValid() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleType,
			"sale type must be 'DEED' or 'TRUST'",
			domainerror.ErrInvalidSaleType,
		)
	}

	if fields.SaleAmount.IsNegative() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleAmount,
			"sale amount must not be negative",
			domainerror.ErrInvalidSaleAmount,
		)
	}

	if fields.NumberOfTours < 0 {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidTourCount,
			"number of tours must not be negative",
			domainerror.ErrInvalidTourCount,
		)
	}

	if fields.FDIGivenPoints.IsNegative() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidGivenPoints,
			"FDI given points must not be negative",
			domainerror.ErrInvalidGivenPoints,
		)
	}

	return validateNotes(fields.Notes)
}

func validateNotes(notes string) error {
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return domainerror.NewSaleError(
			domainerror.ErrCodeSaleNotesTooLong,
			fmt.Sprintf("notes must be at most %d characters", MaxNotesLength),
			domainerror.ErrSaleNotesTooLong,
		)
	}
	return nil
}

// findSale loads a sale and maps a missing row to a coded sale error.
func findSale(ctx context.Context, repo adapter.SaleRepository, id uuid.UUID) (*entity.Sale, error) {
	sale, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}
	return sale, nil
}

func notFoundError() error {
	return domainerror.NewSaleError(
		domainerror.ErrCodeSaleNotFound,
		"sale not found",
		domainerror.ErrSaleNotFound,
	)
}

// excludeSale returns sales without the one identified by id.
func excludeSale(sales []*entity.Sale, id uuid.UUID) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

func tierLevel(tier *entity.CommissionTier) int {
	if tier == nil {
		return 0
	}
	return tier.Level
}
