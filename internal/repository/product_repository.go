package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product, imageIDs []int64) (id int64, err error)
	GetProductByID(ctx context.Context, id int64) (res domain.Product, err error)
	GetCategoryProductsBefore(ctx context.Context, categoryID int64, productID int64, limit int) (res []domain.Product, err error)
	GetCategoryProductsAfter(ctx context.Context, categoryID int64, productID int64, limit int) (res []domain.Product, err error)
	SearchProductsBefore(ctx context.Context, keyword string, productID int64, limit int) (res []domain.Product, err error)
	SearchProductsAfter(ctx context.Context, keyword string, productID int64, limit int) (res []domain.Product, err error)
}

type ProductRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewProductRepository(db *sqlx.DB) ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

// AddProduct inserts the product and binds the referenced images to it in one
// transaction. The bind update only touches rows whose product_id is still
// null, so a concurrent registration racing for the same image loses here
// even after the service-level check passed.
func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product, imageIDs []int64) (id int64, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := tx.PrepareNamedContext(ctx, "INSERT INTO products(name, description, price, category_id, status, user_id, created_at, updated_at) VALUES (:name, :description, :price, :category_id, :status, :user_id, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	result, err := tx.ExecContext(ctx, "UPDATE product_images SET product_id = $1, updated_at = $2 WHERE id = ANY($3) AND product_id IS NULL", id, timestamp, pq.Array(imageIDs))
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	bound, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}
	if bound != int64(len(imageIDs)) {
		err = errs.ErrImageAlreadyBound
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id int64) (res domain.Product, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM products WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return res, errs.ErrInternalServer
	}

	err = r.db.SelectContext(ctx, &res.Images, "SELECT * FROM product_images WHERE product_id = $1 ORDER BY id", id)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *ProductRepositoryImpl) GetCategoryProductsBefore(ctx context.Context, categoryID int64, productID int64, limit int) (res []domain.Product, err error) {
	return r.getProducts(ctx, "GetCategoryProductsBefore",
		"SELECT * FROM products WHERE category_id = $1 AND id < $2 AND deleted_at IS NULL ORDER BY id DESC LIMIT $3",
		categoryID, productID, limit)
}

func (r *ProductRepositoryImpl) GetCategoryProductsAfter(ctx context.Context, categoryID int64, productID int64, limit int) (res []domain.Product, err error) {
	return r.getProducts(ctx, "GetCategoryProductsAfter",
		"SELECT * FROM products WHERE category_id = $1 AND id > $2 AND deleted_at IS NULL ORDER BY id DESC LIMIT $3",
		categoryID, productID, limit)
}

func (r *ProductRepositoryImpl) SearchProductsBefore(ctx context.Context, keyword string, productID int64, limit int) (res []domain.Product, err error) {
	return r.getProducts(ctx, "SearchProductsBefore",
		"SELECT * FROM products WHERE name LIKE $1 AND id < $2 AND deleted_at IS NULL ORDER BY id DESC LIMIT $3",
		"%"+keyword+"%", productID, limit)
}

func (r *ProductRepositoryImpl) SearchProductsAfter(ctx context.Context, keyword string, productID int64, limit int) (res []domain.Product, err error) {
	return r.getProducts(ctx, "SearchProductsAfter",
		"SELECT * FROM products WHERE name LIKE $1 AND id > $2 AND deleted_at IS NULL ORDER BY id DESC LIMIT $3",
		"%"+keyword+"%", productID, limit)
}

func (r *ProductRepositoryImpl) getProducts(ctx context.Context, component string, query string, args ...interface{}) (res []domain.Product, err error) {
	err = r.db.SelectContext(ctx, &res, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
		return nil, errs.ErrInternalServer
	}

	err = r.attachImages(ctx, component, res)
	if err != nil {
		return nil, err
	}

	return
}

func (r *ProductRepositoryImpl) attachImages(ctx context.Context, component string, products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	productIDs := make([]int64, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
	}

	var images []domain.ProductImage
	err := r.db.SelectContext(ctx, &images, "SELECT * FROM product_images WHERE product_id = ANY($1) ORDER BY id", pq.Array(productIDs))
	if err != nil {
		log.Error().Err(err).Str("component", component).Msg("")
		return errs.ErrInternalServer
	}

	imagesByProduct := make(map[int64][]domain.ProductImage, len(products))
	for _, image := range images {
		if image.ProductID == nil {
			continue
		}
		imagesByProduct[*image.ProductID] = append(imagesByProduct[*image.ProductID], image)
	}

	for i := range products {
		products[i].Images = imagesByProduct[products[i].ID]
	}

	return nil
}
