package catalog

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
	"github.com/giftlane/souvenirs-backend/internal/pkg/dbctx"
	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

type ReviewRepo interface {
	Create(dbc dbctx.Context, rows []*types.Review) ([]*types.Review, error)
	ListBySouvenir(dbc dbctx.Context, souvenirID uint) ([]*types.Review, error)
	AverageRating(dbc dbctx.Context, souvenirID uint) (avg float64, count int64, err error)
}

type reviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewRepo(db *gorm.DB, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{db: db, log: baseLog.With("repo", "ReviewRepo")}
}

func (r *reviewRepo) Create(dbc dbctx.Context, rows []*types.Review) ([]*types.Review, error) {
	if len(rows) == 0 {
		return []*types.Review{}, nil
	}
	if err := dbc.Resolve(r.db).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("create reviews: %w", pkgerrors.Classify(err))
	}
	return rows, nil
}

func (r *reviewRepo) ListBySouvenir(dbc dbctx.Context, souvenirID uint) ([]*types.Review, error) {
	var out []*types.Review
	if err := dbc.Resolve(r.db).
		Where("souvenir_id = ?", souvenirID).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("reviews for souvenir %d: %w", souvenirID, pkgerrors.Classify(err))
	}
	return out, nil
}

// AverageRating computes the mean over the souvenir's full review set in a
// single aggregate query. Run inside the add-review transaction it observes
// the just-inserted row and nothing from concurrent writers.
func (r *reviewRepo) AverageRating(dbc dbctx.Context, souvenirID uint) (float64, int64, error) {
	var res struct {
		Avg sql.NullFloat64
		Cnt int64
	}
	if err := dbc.Resolve(r.db).
		Model(&types.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS cnt").
		Where("souvenir_id = ?", souvenirID).
		Scan(&res).Error; err != nil {
		return 0, 0, fmt.Errorf("average rating for souvenir %d: %w", souvenirID, pkgerrors.Classify(err))
	}
	if !res.Avg.Valid {
		return 0, 0, nil
	}
	return res.Avg.Float64, res.Cnt, nil
}
