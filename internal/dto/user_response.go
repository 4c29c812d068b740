package dto

type SignInResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	UserName     string `json:"userName"`
	UserID       int64  `json:"userId"`
}

type RefreshTokenResponse struct {
	Token string `json:"token"`
}
