package repos

import (
	"gorm.io/gorm"

	"github.com/giftlane/souvenirs-backend/internal/data/repos/catalog"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

type SouvenirRepo = catalog.SouvenirRepo
type ReviewRepo = catalog.ReviewRepo
type UserRepo = catalog.UserRepo
type CartRepo = catalog.CartRepo

func NewSouvenirRepo(db *gorm.DB, baseLog *logger.Logger) SouvenirRepo {
	return catalog.NewSouvenirRepo(db, baseLog)
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return catalog.NewReviewRepo(db, baseLog)
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return catalog.NewUserRepo(db, baseLog)
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return catalog.NewCartRepo(db, baseLog)
}
