package catalog

import (
	"time"
)

// Souvenir is a catalog item. Rating is derived: it always equals the mean
// of the ratings across the souvenir's reviews (0 with no reviews) and is
// rewritten transactionally on every added review.
type Souvenir struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"not null;index" json:"name"`
	Image     string  `gorm:"column:image" json:"image"`
	Price     float64 `gorm:"not null;index;check:price >= 0" json:"price"`
	Rating    float64 `gorm:"not null;default:0;index" json:"rating"`
	Amount    uint    `gorm:"not null;default:0" json:"amount"`
	CountryID uint    `gorm:"not null;index" json:"country_id"`

	Country Country `gorm:"foreignKey:CountryID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Souvenir) TableName() string { return "souvenirs" }

type Country struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

func (Country) TableName() string { return "countries" }

type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"index;not null" json:"name"`
}

func (Tag) TableName() string { return "tags" }

// SouvenirTag joins souvenirs and tags many-to-many.
type SouvenirTag struct {
	SouvenirID uint `gorm:"primaryKey" json:"souvenir_id"`
	TagID      uint `gorm:"primaryKey;index" json:"tag_id"`
}

func (SouvenirTag) TableName() string { return "souvenir_tags" }

// SouvenirCard is the reduced projection returned by the tag query.
type SouvenirCard struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}

// DiscussedSouvenir is the projection returned by the review-count query.
// It deliberately carries no id.
type DiscussedSouvenir struct {
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating"`
}
