package catalog

import (
	"time"
)

const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	SouvenirID uint   `gorm:"not null;index" json:"souvenir_id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Text       string `gorm:"column:text" json:"text"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`

	CreatedAt time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
