package controller

import (
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/freshcart/commerce-service/pkg/errs"
	"github.com/freshcart/commerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Echo, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.POST("/upload", c.AddProduct)
	e.GET("/products", c.GetProducts)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{
		Name:        e.FormValue("name"),
		Description: e.FormValue("description"),
		Price:       e.FormValue("price"),
		Category:    e.FormValue("category"),
	}

	fileHeader, err := e.FormFile("image")
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrMissingImage, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}
	defer file.Close()

	resp, err := c.service.AddProduct(e.Request().Context(), payload, fileHeader.Filename, file)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	resp, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
