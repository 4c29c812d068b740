package repository

import (
	"context"
	"time"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type ProductImageRepository interface {
	AddProductImage(ctx context.Context, data domain.ProductImage) (id int64, err error)
	GetProductImagesByIDs(ctx context.Context, ids []int64) (res []domain.ProductImage, err error)
}

type ProductImageRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewProductImageRepository(db *sqlx.DB) ProductImageRepository {
	return &ProductImageRepositoryImpl{db: db}
}

func (r *ProductImageRepositoryImpl) AddProductImage(ctx context.Context, data domain.ProductImage) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO product_images(path, product_id, created_at, updated_at) VALUES (:path, :product_id, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductImage").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProductImage").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *ProductImageRepositoryImpl) GetProductImagesByIDs(ctx context.Context, ids []int64) (res []domain.ProductImage, err error) {
	err = r.db.SelectContext(ctx, &res, "SELECT * FROM product_images WHERE id = ANY($1) ORDER BY id", pq.Array(ids))
	if err != nil {
		log.Error().Err(err).Str("component", "GetProductImagesByIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	return
}
