package controller

import (
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/freshcart/commerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CartController struct {
	service service.CartService
}

func CreateCartController(e *echo.Echo, service service.CartService) {
	c := CartController{
		service: service,
	}
	e.POST("/cart/add", c.AddCartItem)
	e.GET("/cart/:userId", c.GetCart)
	e.PUT("/cart/update", c.UpdateCartItemQuantity)
	e.DELETE("/cart/remove", c.RemoveCartItem)
}

func (c *CartController) AddCartItem(e echo.Context) error {
	payload := dto.CartAddRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCartItem").Msg("")
	}

	resp, err := c.service.AddCartItem(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *CartController) GetCart(e echo.Context) error {
	userID := e.Param("userId")

	resp, err := c.service.GetCart(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) UpdateCartItemQuantity(e echo.Context) error {
	payload := dto.CartUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCartItemQuantity").Msg("")
	}

	resp, err := c.service.UpdateCartItemQuantity(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *CartController) RemoveCartItem(e echo.Context) error {
	payload := dto.CartRemoveRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "RemoveCartItem").Msg("")
	}

	err = c.service.RemoveCartItem(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Cart item removed", nil)
}
