package dto

import (
	"github.com/gdh/parayo/internal/domain"
	"github.com/gdh/parayo/pkg/utils"
)

type ProductImageUploadResponse struct {
	ImageID int64  `json:"imageId"`
	Path    string `json:"path"`
}

type ProductResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Status      string   `json:"status"`
	SellerID    int64    `json:"sellerId"`
	ImagePaths  []string `json:"imagePaths"`
}

type ProductListItemResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Status      string   `json:"status"`
	SellerID    int64    `json:"sellerId"`
	ImagePaths  []string `json:"imagePaths"`
}

func ToProductResponse(product domain.Product) ProductResponse {
	imagePaths := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		imagePaths = append(imagePaths, image.Path)
	}

	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Status:      string(product.Status),
		SellerID:    product.UserID,
		ImagePaths:  imagePaths,
	}
}

// ToProductListItemResponse maps a product for the list view, swapping each
// image path for its thumbnail.
func ToProductListItemResponse(product domain.Product) ProductListItemResponse {
	imagePaths := make([]string, 0, len(product.Images))
	for _, image := range product.Images {
		imagePaths = append(imagePaths, utils.ThumbnailPath(image.Path))
	}

	return ProductListItemResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Status:      string(product.Status),
		SellerID:    product.UserID,
		ImagePaths:  imagePaths,
	}
}
