package controller

import (
	"github.com/freshcart/commerce-service/internal/dto"
	"github.com/freshcart/commerce-service/internal/service"
	"github.com/freshcart/commerce-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Echo, service service.UserService) {
	c := UserController{
		service: service,
	}
	e.GET("/user/:userId", c.GetProfile)
	e.PUT("/user/update/:userId", c.UpdateProfile)
	e.POST("/signup", c.Signup)
	e.POST("/login", c.Login)
}

func (c *UserController) GetProfile(e echo.Context) error {
	userID := e.Param("userId")

	resp, err := c.service.GetProfile(e.Request().Context(), userID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateProfile(e echo.Context) error {
	payload := dto.ProfileUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProfile").Msg("")
	}

	payload.UserID = e.Param("userId")
	resp, err := c.service.UpdateProfile(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) Signup(e echo.Context) error {
	payload := dto.CredentialsRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Signup").Msg("")
	}

	resp, err := c.service.Signup(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.CredentialsRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
