package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusUnauthorized   = http.StatusUnauthorized
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer         = errors.New("Internal server error")
	ErrClient                 = errors.New("Bad request")
	ErrInvalidEmail           = errors.New("Invalid email address")
	ErrInvalidName            = errors.New("Name must be between 2 and 20 characters")
	ErrInvalidPassword        = errors.New("Password must be between 8 and 20 characters excluding whitespace")
	ErrEmailAlreadyUsed       = errors.New("Email has already been used")
	ErrInvalidCredentials     = errors.New("Email or password is incorrect")
	ErrInvalidToken           = errors.New("Invalid or expired token")
	ErrInvalidGrantType       = errors.New("Unsupported grant type")
	ErrUserContextNotFound    = errors.New("User information not found")
	ErrInvalidProduct         = errors.New("Invalid product information")
	ErrProductNotFound        = errors.New("Product not found")
	ErrImageNotFound          = errors.New("Image not found")
	ErrImageAlreadyBound      = errors.New("Image is already attached to another product")
	ErrInvalidImageFile       = errors.New("Unsupported image file")
	ErrImageSaveFailed        = errors.New("Failed to save the image, please try again")
	ErrInvalidSearchCondition = errors.New("Invalid product search condition")
)

var errorMap = map[error]int{
	ErrInternalServer:         ErrStatusInternalServer,
	ErrClient:                 ErrStatusClient,
	ErrInvalidEmail:           ErrStatusClient,
	ErrInvalidName:            ErrStatusClient,
	ErrInvalidPassword:        ErrStatusClient,
	ErrEmailAlreadyUsed:       ErrStatusClient,
	ErrInvalidCredentials:     ErrStatusUnauthorized,
	ErrInvalidToken:           ErrStatusUnauthorized,
	ErrInvalidGrantType:       ErrStatusClient,
	ErrUserContextNotFound:    ErrStatusUnauthorized,
	ErrInvalidProduct:         ErrStatusClient,
	ErrProductNotFound:        ErrStatusNotFound,
	ErrImageNotFound:          ErrStatusClient,
	ErrImageAlreadyBound:      ErrStatusClient,
	ErrInvalidImageFile:       ErrStatusClient,
	ErrImageSaveFailed:        ErrStatusInternalServer,
	ErrInvalidSearchCondition: ErrStatusClient,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
