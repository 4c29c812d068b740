package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/internal/dto"
	"github.com/gdh/parayo/internal/infrastructure/storage"
	"github.com/gdh/parayo/internal/repository"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/gdh/parayo/pkg/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ProductImageService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (respPayload dto.ProductImageUploadResponse, err error)
}

type ProductImageServiceImpl struct {
	imageRepo repository.ProductImageRepository
	store     storage.FileStore
}

func CreateNewProductImageService(imageRepo repository.ProductImageRepository, store storage.FileStore) ProductImageService {
	return &ProductImageServiceImpl{imageRepo: imageRepo, store: store}
}

// UploadImage stores the file under a date-partitioned directory with a
// random name, renders its thumbnail and records the image as not yet
// attached to any product.
func (s *ProductImageServiceImpl) UploadImage(ctx context.Context, file *multipart.FileHeader) (respPayload dto.ProductImageUploadResponse, err error) {
	extension := utils.FileExtension(file.Filename)
	if extension == "" {
		return respPayload, errs.ErrInvalidImageFile
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return respPayload, errs.ErrInvalidImageFile
	}
	defer src.Close()

	date := time.Now().Format("20060102")
	filePath := fmt.Sprintf("/images/%s/%s.%s", date, uuid.NewString(), extension)

	err = s.store.SaveImage(filePath, src)
	if err != nil {
		return
	}

	id, err := s.imageRepo.AddProductImage(ctx, domain.ProductImage{Path: filePath})
	if err != nil {
		return
	}

	respPayload.ImageID = id
	respPayload.Path = filePath

	return
}
