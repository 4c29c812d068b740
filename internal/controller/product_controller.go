package controller

import (
	"strconv"

	"github.com/gdh/parayo/internal/dto"
	"github.com/gdh/parayo/internal/service"
	"github.com/gdh/parayo/pkg/errs"
	"github.com/gdh/parayo/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service      service.ProductService
	imageService service.ProductImageService
}

func CreateProductController(e *echo.Group, service service.ProductService, imageService service.ProductImageService) {
	pc := ProductController{
		service:      service,
		imageService: imageService,
	}
	e.POST("/product_images", pc.UploadImage)
	e.POST("/products", pc.RegisterProduct)
	e.GET("/products", pc.SearchProducts)
	e.GET("/products/:id", pc.GetProduct)
}

func (c *ProductController) UploadImage(e echo.Context) error {
	file, err := e.FormFile("image")
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImage").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	respPayload, err := c.imageService.UploadImage(e.Request().Context(), file)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}

func (c *ProductController) RegisterProduct(e echo.Context) error {
	payload := dto.ProductRegistrationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "RegisterProduct").Msg("")
	}

	respPayload, err := c.service.RegisterProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}

func (c *ProductController) SearchProducts(e echo.Context) error {
	filter := dto.ProductSearchFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "SearchProducts").Msg("")
	}

	respPayload, err := c.service.SearchProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	respPayload, err := c.service.GetProduct(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, respPayload)
}
