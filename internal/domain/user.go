package domain

type User struct {
	ID             int64   `db:"id"`
	Email          string  `db:"email"`
	HashedPassword string  `db:"hashed_password"`
	Name           string  `db:"name"`
	FcmToken       *string `db:"fcm_token"`
	CreatedAt      int64   `db:"created_at"`
	UpdatedAt      int64   `db:"updated_at"`
	DeletedAt      *int64  `db:"deleted_at"`
}
