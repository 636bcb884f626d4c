package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/giftlane/souvenirs-backend/internal/domain"
)

func SeedCountry(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Country {
	tb.Helper()
	c := &types.Country{Name: name}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed country: %v", err)
	}
	return c
}

func SeedSouvenir(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, price, rating float64, amount uint, countryID uint) *types.Souvenir {
	tb.Helper()
	s := &types.Souvenir{
		Name:      name,
		Image:     name + ".png",
		Price:     price,
		Rating:    rating,
		Amount:    amount,
		CountryID: countryID,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed souvenir: %v", err)
	}
	return s
}

func SeedTag(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Tag {
	tb.Helper()
	t := &types.Tag{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed tag: %v", err)
	}
	return t
}

func TagSouvenir(tb testing.TB, ctx context.Context, tx *gorm.DB, souvenirID, tagID uint) {
	tb.Helper()
	if err := tx.WithContext(ctx).Create(&types.SouvenirTag{SouvenirID: souvenirID, TagID: tagID}).Error; err != nil {
		tb.Fatalf("tag souvenir: %v", err)
	}
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, login string) *types.User {
	tb.Helper()
	u := &types.User{Login: login}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedReview(tb testing.TB, ctx context.Context, tx *gorm.DB, souvenirID, userID uint, rating int) *types.Review {
	tb.Helper()
	r := &types.Review{
		SouvenirID: souvenirID,
		UserID:     userID,
		Text:       "review",
		Rating:     rating,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed review: %v", err)
	}
	return r
}

func SeedCart(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uint) *types.Cart {
	tb.Helper()
	c := &types.Cart{UserID: userID}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed cart: %v", err)
	}
	return c
}

func AddCartItem(tb testing.TB, ctx context.Context, tx *gorm.DB, cartID, souvenirID, quantity uint) {
	tb.Helper()
	ci := &types.CartItem{CartID: cartID, SouvenirID: souvenirID, Quantity: quantity}
	if err := tx.WithContext(ctx).Create(ci).Error; err != nil {
		tb.Fatalf("add cart item: %v", err)
	}
}
