package domain

import (
	"github.com/giftlane/souvenirs-backend/internal/domain/catalog"
)

const (
	RatingMin = catalog.RatingMin
	RatingMax = catalog.RatingMax
)

type Souvenir = catalog.Souvenir
type Country = catalog.Country
type Tag = catalog.Tag
type SouvenirTag = catalog.SouvenirTag
type SouvenirCard = catalog.SouvenirCard
type DiscussedSouvenir = catalog.DiscussedSouvenir

type Review = catalog.Review

type User = catalog.User
type Cart = catalog.Cart
type CartItem = catalog.CartItem
