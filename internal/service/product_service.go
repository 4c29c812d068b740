package service

import (
	"context"
	"time"

	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/internal/dto"
	"github.com/gdh/parayo/internal/repository"
	"github.com/gdh/parayo/pkg/auth"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	DirectionNext = "next"
	DirectionPrev = "prev"

	defaultSearchLimit = 10
)

type ProductService interface {
	RegisterProduct(ctx context.Context, payload dto.ProductRegistrationRequest) (respPayload dto.ProductResponse, err error)
	SearchProducts(ctx context.Context, filter dto.ProductSearchFilter) (respPayload []dto.ProductListItemResponse, err error)
	GetProduct(ctx context.Context, id int64) (respPayload dto.ProductResponse, err error)
}

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	imageRepo    repository.ProductImageRepository
	userRepo     repository.UserRepository
	notification NotificationService
}

func CreateNewProductService(productRepo repository.ProductRepository, imageRepo repository.ProductImageRepository, userRepo repository.UserRepository, notification NotificationService) ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		imageRepo:    imageRepo,
		userRepo:     userRepo,
		notification: notification,
	}
}

// RegisterProduct validates the request against the catalog rules, checks
// that every referenced image exists and is still unbound, then persists the
// product in SELLABLE status with the images attached. The seller gets a
// fire-and-forget push once the listing is live.
func (s *ProductServiceImpl) RegisterProduct(ctx context.Context, payload dto.ProductRegistrationRequest) (respPayload dto.ProductResponse, err error) {
	user, ok := auth.UserFromContext(ctx)
	if !ok {
		return respPayload, errs.ErrUserContextNotFound
	}

	err = validateRegistrationRequest(payload)
	if err != nil {
		return
	}

	imageIDs := make([]int64, 0, len(payload.ImageIDs))
	for _, id := range payload.ImageIDs {
		if id != nil {
			imageIDs = append(imageIDs, *id)
		}
	}

	images, err := s.imageRepo.GetProductImagesByIDs(ctx, imageIDs)
	if err != nil {
		return
	}

	if len(images) != len(imageIDs) {
		return respPayload, errs.ErrImageNotFound
	}

	for _, image := range images {
		if image.ProductID != nil {
			return respPayload, errs.ErrImageAlreadyBound
		}
	}

	productEnt := domain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		CategoryID:  payload.CategoryID,
		Status:      domain.ProductStatusSellable,
		UserID:      user.ID,
	}

	id, err := s.productRepo.AddProduct(ctx, productEnt, imageIDs)
	if err != nil {
		return
	}

	go s.notifyRegistration(user.ID, payload.Name)

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	return dto.ToProductResponse(product), nil
}

// SearchProducts scrolls the catalog by keyset relative to the cursor product
// id. The four supported lookups are keyed on the presence of a category or
// keyword and the scroll direction; any other combination is rejected.
func (s *ProductServiceImpl) SearchProducts(ctx context.Context, filter dto.ProductSearchFilter) (respPayload []dto.ProductListItemResponse, err error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	type searchCondition struct {
		hasCategory bool
		hasKeyword  bool
		direction   string
	}

	lookups := map[searchCondition]func() ([]domain.Product, error){
		{hasKeyword: true, direction: DirectionNext}: func() ([]domain.Product, error) {
			return s.productRepo.SearchProductsBefore(ctx, filter.Keyword, filter.ProductID, limit)
		},
		{hasKeyword: true, direction: DirectionPrev}: func() ([]domain.Product, error) {
			return s.productRepo.SearchProductsAfter(ctx, filter.Keyword, filter.ProductID, limit)
		},
		{hasCategory: true, direction: DirectionNext}: func() ([]domain.Product, error) {
			return s.productRepo.GetCategoryProductsBefore(ctx, *filter.CategoryID, filter.ProductID, limit)
		},
		{hasCategory: true, direction: DirectionPrev}: func() ([]domain.Product, error) {
			return s.productRepo.GetCategoryProductsAfter(ctx, *filter.CategoryID, filter.ProductID, limit)
		},
	}

	lookup, ok := lookups[searchCondition{
		hasCategory: filter.CategoryID != nil,
		hasKeyword:  filter.Keyword != "",
		direction:   filter.Direction,
	}]
	if !ok {
		return nil, errs.ErrInvalidSearchCondition
	}

	products, err := lookup()
	if err != nil {
		return
	}

	respPayload = make([]dto.ProductListItemResponse, 0, len(products))
	for _, product := range products {
		respPayload = append(respPayload, dto.ToProductListItemResponse(product))
	}

	return
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id int64) (respPayload dto.ProductResponse, err error) {
	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	if product.ID == 0 {
		return respPayload, errs.ErrProductNotFound
	}

	return dto.ToProductResponse(product), nil
}

func (s *ProductServiceImpl) notifyRegistration(userID int64, productName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil || user.ID == 0 {
		return
	}

	err = s.notification.SendToUser(ctx, user, "Your product is now listed", productName)
	if err != nil {
		log.Error().Err(err).Str("component", "notifyRegistration").Msg("")
	}
}

func validateRegistrationRequest(payload dto.ProductRegistrationRequest) error {
	nonNilImageIDs := 0
	for _, id := range payload.ImageIDs {
		if id != nil {
			nonNilImageIDs++
		}
	}

	switch {
	case len(payload.Name) < 1 || len(payload.Name) > 40,
		len(payload.Description) < 1 || len(payload.Description) > 500,
		payload.Price <= 0,
		len(payload.ImageIDs) < 1 || len(payload.ImageIDs) > 4,
		nonNilImageIDs == 0:
		return errs.ErrInvalidProduct
	}

	return nil
}
