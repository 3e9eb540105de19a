package controller

import (
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/freshcart/commerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type OrderController struct {
	service service.OrderService
}

func CreateOrderController(e *echo.Echo, service service.OrderService) {
	c := OrderController{
		service: service,
	}
	e.POST("/orders/checkout", c.Checkout)
	e.GET("/orders/user/:userId", c.GetOrdersByUser)

	// Rider routes are not gated behind any role check.
	e.GET("/rider/orders", c.GetAllOrders)
	e.PUT("/rider/orders/:orderId/status", c.UpdateOrderStatus)
}

func (c *OrderController) Checkout(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Checkout").Msg("")
	}

	resp, err := c.service.Checkout(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *OrderController) GetOrdersByUser(e echo.Context) error {
	userID := e.Param("userId")

	resp, err := c.service.GetOrdersByUser(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) GetAllOrders(e echo.Context) error {
	resp, err := c.service.GetAllOrders(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *OrderController) UpdateOrderStatus(e echo.Context) error {
	payload := dto.OrderStatusRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Msg("")
	}

	payload.OrderID = e.Param("orderId")
	resp, err := c.service.UpdateOrderStatus(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
