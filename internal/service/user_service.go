package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/internal/dto"
	"github.com/gdh/parayo/internal/repository"
	"github.com/gdh/parayo/pkg/auth"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/gdh/parayo/pkg/token"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,6}$`)

type UserService interface {
	SignUp(ctx context.Context, payload dto.SignUpRequest) (err error)
	SignIn(ctx context.Context, payload dto.SignInRequest) (respPayload dto.SignInResponse, err error)
	RefreshToken(ctx context.Context) (respPayload dto.RefreshTokenResponse, err error)
	UpdateFcmToken(ctx context.Context, fcmToken string) (err error)
}

type UserServiceImpl struct {
	repo   repository.UserRepository
	tokens *token.Service
}

func CreateNewUserService(repo repository.UserRepository, tokens *token.Service) UserService {
	return &UserServiceImpl{repo: repo, tokens: tokens}
}

// SignUp validates the request, rejects duplicate emails and stores the user
// with a bcrypt password hash. Emails are lower-cased before both the
// duplicate check and the insert so the uniqueness rule is case-insensitive.
func (s *UserServiceImpl) SignUp(ctx context.Context, payload dto.SignUpRequest) (err error) {
	err = validateSignUpRequest(payload)
	if err != nil {
		return
	}

	email := strings.ToLower(payload.Email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if user.ID != 0 {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error().Err(err).Str("component", "SignUp").Msg("")
		return errs.ErrInternalServer
	}

	userEnt := domain.User{
		Email:          email,
		HashedPassword: string(hash),
		Name:           payload.Name,
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

// SignIn answers the same credential error for an unknown email and a wrong
// password so responses cannot be used to enumerate accounts.
func (s *UserServiceImpl) SignIn(ctx context.Context, payload dto.SignInRequest) (respPayload dto.SignInResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.ToLower(payload.Email))
	if err != nil {
		return
	}

	if user.ID == 0 {
		return respPayload, errs.ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return respPayload, errs.ErrInvalidCredentials
	}

	if payload.FcmToken != "" {
		err = s.repo.UpdateFcmToken(ctx, user.ID, payload.FcmToken)
		if err != nil {
			return
		}
	}

	accessToken, err := s.tokens.CreateToken(user.Email)
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return respPayload, errs.ErrInternalServer
	}

	refreshToken, err := s.tokens.CreateRefreshToken(user.Email)
	if err != nil {
		log.Error().Err(err).Str("component", "SignIn").Msg("")
		return respPayload, errs.ErrInternalServer
	}

	respPayload.Token = accessToken
	respPayload.RefreshToken = refreshToken
	respPayload.UserName = user.Name
	respPayload.UserID = user.ID

	return
}

// RefreshToken issues a fresh access token for the user resolved from the
// verified refresh token by the validation middleware.
func (s *UserServiceImpl) RefreshToken(ctx context.Context) (respPayload dto.RefreshTokenResponse, err error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return respPayload, errs.ErrUserContextNotFound
	}

	accessToken, err := s.tokens.CreateToken(user.Email)
	if err != nil {
		log.Error().Err(err).Str("component", "RefreshToken").Msg("")
		return respPayload, errs.ErrInternalServer
	}

	respPayload.Token = accessToken

	return
}

func (s *UserServiceImpl) UpdateFcmToken(ctx context.Context, fcmToken string) (err error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return errs.ErrUserContextNotFound
	}

	return s.repo.UpdateFcmToken(ctx, user.ID, fcmToken)
}

func validateSignUpRequest(payload dto.SignUpRequest) error {
	if !emailRegex.MatchString(payload.Email) {
		return errs.ErrInvalidEmail
	}

	nameLen := len(strings.TrimSpace(payload.Name))
	if nameLen < 2 || nameLen > 20 {
		return errs.ErrInvalidName
	}

	passwordLen := len(strings.TrimSpace(payload.Password))
	if passwordLen < 8 || passwordLen > 20 {
		return errs.ErrInvalidPassword
	}

	return nil
}
