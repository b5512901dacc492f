// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"time"

	domain "github.com/ghuser/itemvault/services/item/domain"
	"github.com/ghuser/itemvault/services/item/domain/models"
)

// CheckDeletable applies the age gate: an item may be deleted only once
// MinDeletableAgeDays full days have elapsed since its creation. An item
// exactly MinDeletableAgeDays old passes.
//
// Returns *domain.AgeRestrictedError carrying the creation time and the
// remaining full days (always >= 1) when the gate rejects.
func CheckDeletable(item *models.Item, now time.Time) error {
	ageDays := item.AgeDays(now)
	if ageDays < domain.MinDeletableAgeDays {
		return &domain.AgeRestrictedError{
			CreatedAt:     item.CreatedAt,
			DaysRemaining: domain.MinDeletableAgeDays - ageDays,
		}
	}
	return nil
}

// ValidateItemForCreation performs final checks on a constructed name before
// it is persisted. The ItemName constructor already enforces the trimmed
// non-empty rule; this exists so the administrative insert path shares the
// same gate as the public create path.
func ValidateItemForCreation(name models.ItemName) error {
	if _, err := models.NewItemName(name.String()); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}
	return nil
}
