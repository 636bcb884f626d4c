package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
	"github.com/giftlane/souvenirs-backend/internal/pkg/dbctx"
	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

// SouvenirRepo holds every souvenir-shaped query. All read methods issue a
// single request to the store; none of them filters in memory.
type SouvenirRepo interface {
	ListAll(dbc dbctx.Context) ([]*types.Souvenir, error)
	ListCheap(dbc dbctx.Context, maxPrice float64) ([]*types.Souvenir, error)
	TopRated(dbc dbctx.Context, n int) ([]*types.Souvenir, error)
	ByTag(dbc dbctx.Context, tagName string) ([]*types.SouvenirCard, error)
	CountMatching(dbc dbctx.Context, country string, minRating, maxPrice float64) (int64, error)
	Search(dbc dbctx.Context, substring string) ([]*types.Souvenir, error)
	Discussed(dbc dbctx.Context, minReviewCount int) ([]*types.DiscussedSouvenir, error)
	SweepOutOfStock(dbc dbctx.Context) (int64, error)
	GetByIDForUpdate(dbc dbctx.Context, id uint) (*types.Souvenir, error)
	UpdateRating(dbc dbctx.Context, id uint, rating float64) error
}

type souvenirRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSouvenirRepo(db *gorm.DB, baseLog *logger.Logger) SouvenirRepo {
	return &souvenirRepo{db: db, log: baseLog.With("repo", "SouvenirRepo")}
}

func (r *souvenirRepo) ListAll(dbc dbctx.Context) ([]*types.Souvenir, error) {
	var out []*types.Souvenir
	if err := dbc.Resolve(r.db).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list souvenirs: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

func (r *souvenirRepo) ListCheap(dbc dbctx.Context, maxPrice float64) ([]*types.Souvenir, error) {
	if maxPrice < 0 {
		return nil, fmt.Errorf("negative max price %v: %w", maxPrice, pkgerrors.ErrInvalidArgument)
	}
	var out []*types.Souvenir
	if err := dbc.Resolve(r.db).
		Where("price <= ?", maxPrice).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list cheap souvenirs: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

func (r *souvenirRepo) TopRated(dbc dbctx.Context, n int) ([]*types.Souvenir, error) {
	if n <= 0 {
		return []*types.Souvenir{}, nil
	}
	var out []*types.Souvenir
	// Secondary order on id keeps ties reproducible.
	if err := dbc.Resolve(r.db).
		Order("rating DESC, id ASC").
		Limit(n).
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("top rated souvenirs: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

func (r *souvenirRepo) ByTag(dbc dbctx.Context, tagName string) ([]*types.SouvenirCard, error) {
	var out []*types.SouvenirCard
	// DISTINCT guards against duplicate rows when a souvenir is joined
	// through more than one matching association row.
	if err := dbc.Resolve(r.db).
		Model(&types.Souvenir{}).
		Select("DISTINCT souvenirs.id, souvenirs.name, souvenirs.image, souvenirs.price, souvenirs.rating").
		Joins("JOIN souvenir_tags ON souvenir_tags.souvenir_id = souvenirs.id").
		Joins("JOIN tags ON tags.id = souvenir_tags.tag_id").
		Where("tags.name = ?", tagName).
		Order("souvenirs.id").
		Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("souvenirs by tag: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

func (r *souvenirRepo) CountMatching(dbc dbctx.Context, country string, minRating, maxPrice float64) (int64, error) {
	if minRating < 0 {
		return 0, fmt.Errorf("negative min rating %v: %w", minRating, pkgerrors.ErrInvalidArgument)
	}
	if maxPrice < 0 {
		return 0, fmt.Errorf("negative max price %v: %w", maxPrice, pkgerrors.ErrInvalidArgument)
	}
	var count int64
	if err := dbc.Resolve(r.db).
		Model(&types.Souvenir{}).
		Joins("JOIN countries ON countries.id = souvenirs.country_id").
		Where("countries.name = ?", country).
		Where("souvenirs.rating >= ?", minRating).
		Where("souvenirs.price <= ?", maxPrice).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count matching souvenirs: %w", pkgerrors.Classify(err))
	}
	return count, nil
}

// likeEscaper neutralizes LIKE metacharacters so a search term matches
// literally. Pairs with the ESCAPE '\' clause below.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *souvenirRepo) Search(dbc dbctx.Context, substring string) ([]*types.Souvenir, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(substring)) + "%"
	var out []*types.Souvenir
	if err := dbc.Resolve(r.db).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern).
		Order("id").
		Find(&out).Error; err != nil {
		return nil, fmt.Errorf("search souvenirs: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

func (r *souvenirRepo) Discussed(dbc dbctx.Context, minReviewCount int) ([]*types.DiscussedSouvenir, error) {
	if minReviewCount < 0 {
		return nil, fmt.Errorf("negative review count %d: %w", minReviewCount, pkgerrors.ErrInvalidArgument)
	}
	var out []*types.DiscussedSouvenir
	// LEFT JOIN so a zero threshold returns souvenirs with no reviews too.
	if err := dbc.Resolve(r.db).
		Model(&types.Souvenir{}).
		Select("souvenirs.name, souvenirs.image, souvenirs.price, souvenirs.rating").
		Joins("LEFT JOIN reviews ON reviews.souvenir_id = souvenirs.id").
		Group("souvenirs.id").
		Having("COUNT(reviews.id) >= ?", minReviewCount).
		Order("souvenirs.id").
		Scan(&out).Error; err != nil {
		return nil, fmt.Errorf("discussed souvenirs: %w", pkgerrors.Classify(err))
	}
	return out, nil
}

// SweepOutOfStock removes every souvenir with zero stock together with its
// dependent review, tag-association and cart-item rows. The cleanup is
// explicit rather than relying on FK cascades so it behaves the same on
// every supported dialect. Returns the number of souvenirs removed.
func (r *souvenirRepo) SweepOutOfStock(dbc dbctx.Context) (int64, error) {
	var removed int64
	err := dbc.Resolve(r.db).Transaction(func(tx *gorm.DB) error {
		// Lock the doomed rows before touching dependents. A concurrent
		// add-review holds the same row lock while it inserts, so this
		// scan waits it out and then sweeps the committed review along
		// with the souvenir; if the sweep wins the lock instead, the
		// add-review fails on the vanished row and rolls back. Without
		// the lock the dependent deletes could run before the review
		// insert commits and strand it. On sqlite the clause is skipped,
		// same as GetByIDForUpdate.
		q := tx.Model(&types.Souvenir{}).Where("amount = 0")
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var ids []uint
		if err := q.Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("souvenir_id IN ?", ids).Delete(&types.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("souvenir_id IN ?", ids).Delete(&types.SouvenirTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("souvenir_id IN ?", ids).Delete(&types.CartItem{}).Error; err != nil {
			return err
		}
		res := tx.Where("id IN ?", ids).Delete(&types.Souvenir{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sweep out of stock: %w", pkgerrors.Classify(err))
	}
	return removed, nil
}

// GetByIDForUpdate locks the souvenir row for the remainder of the
// transaction. Requires dbc.Tx. On sqlite the lock clause is skipped: the
// driver serializes writers at the connection level already and rejects
// FOR UPDATE syntax.
func (r *souvenirRepo) GetByIDForUpdate(dbc dbctx.Context, id uint) (*types.Souvenir, error) {
	if dbc.Tx == nil {
		return nil, fmt.Errorf("GetByIDForUpdate requires dbc.Tx")
	}
	q := dbc.Resolve(r.db)
	if dbc.Tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out types.Souvenir
	if err := q.Where("id = ?", id).Take(&out).Error; err != nil {
		return nil, fmt.Errorf("souvenir %d: %w", id, pkgerrors.Classify(err))
	}
	return &out, nil
}

func (r *souvenirRepo) UpdateRating(dbc dbctx.Context, id uint, rating float64) error {
	if err := dbc.Resolve(r.db).
		Model(&types.Souvenir{}).
		Where("id = ?", id).
		Update("rating", rating).Error; err != nil {
		return fmt.Errorf("update souvenir %d rating: %w", id, pkgerrors.Classify(err))
	}
	return nil
}
