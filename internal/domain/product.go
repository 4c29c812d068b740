package domain

type ProductStatus string

const (
	ProductStatusSellable ProductStatus = "SELLABLE"
	ProductStatusSoldOut  ProductStatus = "SOLD_OUT"
)

type Product struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Price       int64          `db:"price"`
	CategoryID  int64          `db:"category_id"`
	Status      ProductStatus  `db:"status"`
	UserID      int64          `db:"user_id"`
	CreatedAt   int64          `db:"created_at"`
	UpdatedAt   int64          `db:"updated_at"`
	DeletedAt   *int64         `db:"deleted_at"`
	Images      []ProductImage `db:"-"`
}

// ProductImage is created on upload with a null ProductID and bound to a
// product exactly once during product registration.
type ProductImage struct {
	ID        int64  `db:"id"`
	Path      string `db:"path"`
	ProductID *int64 `db:"product_id"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
