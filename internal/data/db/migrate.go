package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&types.Country{},
		&types.Souvenir{},
		&types.Tag{},
		&types.SouvenirTag{},

		// Reviews
		&types.User{},
		&types.Review{},

		// Carts
		&types.Cart{},
		&types.CartItem{},
	)
}

// EnsureCatalogIndexes adds the composite index behind the
// country/rating/price count query, which the per-column tags alone do not
// cover. Safe to re-run.
func EnsureCatalogIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_souvenirs_country_rating_price
		ON souvenirs (country_id, rating, price);
	`).Error; err != nil {
		return fmt.Errorf("create idx_souvenirs_country_rating_price: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_souvenir_tags_tag
		ON souvenir_tags (tag_id, souvenir_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_souvenir_tags_tag: %w", err)
	}

	return nil
}
