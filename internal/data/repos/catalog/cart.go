package catalog

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
	"github.com/giftlane/souvenirs-backend/internal/pkg/dbctx"
	pkgerrors "github.com/giftlane/souvenirs-backend/internal/pkg/errors"
	"github.com/giftlane/souvenirs-backend/internal/platform/logger"
)

type UserRepo interface {
	GetByLogin(dbc dbctx.Context, login string) (*types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) GetByLogin(dbc dbctx.Context, login string) (*types.User, error) {
	var out types.User
	if err := dbc.Resolve(r.db).
		Where("login = ?", login).
		Take(&out).Error; err != nil {
		return nil, fmt.Errorf("user %q: %w", login, pkgerrors.Classify(err))
	}
	return &out, nil
}

type CartRepo interface {
	SumByLogin(dbc dbctx.Context, login string) (float64, error)
}

type cartRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCartRepo(db *gorm.DB, baseLog *logger.Logger) CartRepo {
	return &cartRepo{db: db, log: baseLog.With("repo", "CartRepo")}
}

// SumByLogin totals the cart of the user identified by login, weighting
// each line by its quantity. One aggregate query; zero result rows means
// the login has no cart, which surfaces as ErrNotFound. An existing cart
// with no items sums to 0.
func (r *cartRepo) SumByLogin(dbc dbctx.Context, login string) (float64, error) {
	var rows []struct {
		Total float64
	}
	if err := dbc.Resolve(r.db).
		Model(&types.Cart{}).
		Select("COALESCE(SUM(souvenirs.price * cart_items.quantity), 0) AS total").
		Joins("JOIN users ON users.id = carts.user_id").
		Joins("LEFT JOIN cart_items ON cart_items.cart_id = carts.id").
		Joins("LEFT JOIN souvenirs ON souvenirs.id = cart_items.souvenir_id").
		Where("users.login = ?", login).
		Group("carts.id").
		Scan(&rows).Error; err != nil {
		return 0, fmt.Errorf("cart sum for %q: %w", login, pkgerrors.Classify(err))
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("cart for %q: %w", login, pkgerrors.ErrNotFound)
	}
	return rows[0].Total, nil
}
