package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/giftlane/souvenirs-backend/internal/data/repos"
	types "github.com/giftlane/souvenirs-backend/internal/domain"
	"github.com/giftlane/souvenirs-backend/internal/pkg/dbctx"
	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

// AddReviewInput carries the caller-supplied part of a new review.
type AddReviewInput struct {
	Login  string `json:"login"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// CatalogService is the programmatic API over the souvenir catalog: one
// method per query shape plus the compound add-review write.
type CatalogService interface {
	ListAll(ctx context.Context) ([]*types.Souvenir, error)
	ListCheap(ctx context.Context, maxPrice float64) ([]*types.Souvenir, error)
	TopRated(ctx context.Context, n int) ([]*types.Souvenir, error)
	ByTag(ctx context.Context, tagName string) ([]*types.SouvenirCard, error)
	CountMatching(ctx context.Context, country string, minRating, maxPrice float64) (int64, error)
	Search(ctx context.Context, substring string) ([]*types.Souvenir, error)
	Discussed(ctx context.Context, minReviewCount int) ([]*types.DiscussedSouvenir, error)
	SweepOutOfStock(ctx context.Context) (int64, error)
	AddReview(ctx context.Context, souvenirID uint, in AddReviewInput) (*types.Souvenir, error)
	CartSum(ctx context.Context, login string) (float64, error)
}

type catalogService struct {
	db        *gorm.DB
	log       *logger.Logger
	souvenirs repos.SouvenirRepo
	reviews   repos.ReviewRepo
	users     repos.UserRepo
	carts     repos.CartRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	souvenirs repos.SouvenirRepo,
	reviews repos.ReviewRepo,
	users repos.UserRepo,
	carts repos.CartRepo,
) CatalogService {
	return &catalogService{
		db:        db,
		log:       baseLog.With("service", "CatalogService"),
		souvenirs: souvenirs,
		reviews:   reviews,
		users:     users,
		carts:     carts,
	}
}

func (s *catalogService) ListAll(ctx context.Context) ([]*types.Souvenir, error) {
	return s.souvenirs.ListAll(dbctx.Context{Ctx: ctx})
}

func (s *catalogService) ListCheap(ctx context.Context, maxPrice float64) ([]*types.Souvenir, error) {
	return s.souvenirs.ListCheap(dbctx.Context{Ctx: ctx}, maxPrice)
}

func (s *catalogService) TopRated(ctx context.Context, n int) ([]*types.Souvenir, error) {
	return s.souvenirs.TopRated(dbctx.Context{Ctx: ctx}, n)
}

func (s *catalogService) ByTag(ctx context.Context, tagName string) ([]*types.SouvenirCard, error) {
	return s.souvenirs.ByTag(dbctx.Context{Ctx: ctx}, tagName)
}

func (s *catalogService) CountMatching(ctx context.Context, country string, minRating, maxPrice float64) (int64, error) {
	return s.souvenirs.CountMatching(dbctx.Context{Ctx: ctx}, country, minRating, maxPrice)
}

func (s *catalogService) Search(ctx context.Context, substring string) ([]*types.Souvenir, error) {
	return s.souvenirs.Search(dbctx.Context{Ctx: ctx}, substring)
}

func (s *catalogService) Discussed(ctx context.Context, minReviewCount int) ([]*types.DiscussedSouvenir, error) {
	return s.souvenirs.Discussed(dbctx.Context{Ctx: ctx}, minReviewCount)
}

func (s *catalogService) SweepOutOfStock(ctx context.Context) (int64, error) {
	removed, err := s.souvenirs.SweepOutOfStock(dbctx.Context{Ctx: ctx})
	if err != nil {
		s.log.Error("SweepOutOfStock failed", "error", err)
		return 0, err
	}
	if removed > 0 {
		s.log.Info("Swept out-of-stock souvenirs", "removed", removed)
	}
	return removed, nil
}

// AddReview inserts a review and rewrites the souvenir's derived rating in
// a single transaction. The souvenir row is locked before the insert, so
// two concurrent reviews of the same souvenir serialize and each recompute
// sees the other's row; reviews of different souvenirs do not block each
// other. The mean is always recomputed from the full review set, never
// rolled forward from the previous average.
func (s *catalogService) AddReview(ctx context.Context, souvenirID uint, in AddReviewInput) (*types.Souvenir, error) {
	if in.Rating < types.RatingMin || in.Rating > types.RatingMax {
		return nil, fmt.Errorf("rating %d outside [%d,%d]: %w",
			in.Rating, types.RatingMin, types.RatingMax, pkgerrors.ErrInvalidArgument)
	}

	var updated *types.Souvenir
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		user, err := s.users.GetByLogin(dbc, in.Login)
		if err != nil {
			return err
		}
		souvenir, err := s.souvenirs.GetByIDForUpdate(dbc, souvenirID)
		if err != nil {
			return err
		}

		if _, err := s.reviews.Create(dbc, []*types.Review{{
			SouvenirID: souvenir.ID,
			UserID:     user.ID,
			Text:       in.Text,
			Rating:     in.Rating,
		}}); err != nil {
			return err
		}

		avg, count, err := s.reviews.AverageRating(dbc, souvenir.ID)
		if err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("review set empty after insert for souvenir %d", souvenir.ID)
		}

		if err := s.souvenirs.UpdateRating(dbc, souvenir.ID, avg); err != nil {
			return err
		}

		souvenir.Rating = avg
		updated = souvenir
		return nil
	})
	if err != nil {
		s.log.Error("AddReview failed", "souvenir_id", souvenirID, "error", err)
		return nil, err
	}
	return updated, nil
}

func (s *catalogService) CartSum(ctx context.Context, login string) (float64, error) {
	return s.carts.SumByLogin(dbctx.Context{Ctx: ctx}, login)
}
