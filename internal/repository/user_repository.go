package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	GetUserByID(ctx context.Context, id int64) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id int64, err error)
	UpdateFcmToken(ctx context.Context, id int64, fcmToken string) (err error)
}

type UserRepositoryImpl struct {
	db *sqlx.DB
}

func CreateNewUserRepository(db *sqlx.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE email = $1 AND deleted_at IS NULL", email)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByEmail").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (res domain.User, err error) {
	row := r.db.QueryRowxContext(ctx, "SELECT * FROM users WHERE id = $1 AND deleted_at IS NULL", id)
	err = row.StructScan(&res)
	if err != nil {
		if err == sql.ErrNoRows {
			return res, nil
		}
		log.Error().Err(err).Str("component", "GetUserByID").Msg("")
		return res, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) AddUser(ctx context.Context, data domain.User) (id int64, err error) {
	timestamp := time.Now().UnixMilli()
	data.CreatedAt = timestamp
	data.UpdatedAt = timestamp

	nstmt, err := r.db.PrepareNamedContext(ctx, "INSERT INTO users(email, hashed_password, name, fcm_token, created_at, updated_at) VALUES (:email, :hashed_password, :name, :fcm_token, :created_at, :updated_at) RETURNING id")
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}
	defer nstmt.Close()

	err = nstmt.GetContext(ctx, &id, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
		return 0, errs.ErrInternalServer
	}

	return
}

func (r *UserRepositoryImpl) UpdateFcmToken(ctx context.Context, id int64, fcmToken string) (err error) {
	timestamp := time.Now().UnixMilli()

	_, err = r.db.ExecContext(ctx, "UPDATE users SET fcm_token = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL", fcmToken, timestamp, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateFcmToken").Msg("")
		return errs.ErrInternalServer
	}

	return
}
