package catalog

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Login string `gorm:"uniqueIndex;not null" json:"login"`
}

func (User) TableName() string { return "users" }

// Cart belongs to exactly one user; the unique index on user_id enforces
// the one-cart-per-user rule at the storage layer.
type Cart struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
}

func (Cart) TableName() string { return "carts" }

// CartItem joins carts and souvenirs with a quantity attribute.
type CartItem struct {
	CartID     uint `gorm:"primaryKey" json:"cart_id"`
	SouvenirID uint `gorm:"primaryKey;index" json:"souvenir_id"`
	Quantity   uint `gorm:"not null;default:1" json:"quantity"`
}

func (CartItem) TableName() string { return "cart_items" }
