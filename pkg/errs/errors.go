package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer     = errors.New("Internal server error")
	ErrClient             = errors.New("Bad request")
	ErrNotFound           = errors.New("Resource not found")
	ErrPhoneAlreadyUsed   = errors.New("Phone number has already been registered")
	ErrInvalidCredentials = errors.New("Phone number or password is incorrect")
	ErrEmptyCart          = errors.New("Cart is empty")
	ErrInvalidOrderStatus = errors.New("Invalid order status")
	ErrNotAnImage         = errors.New("Uploaded file is not a supported image format")
	ErrMissingImage       = errors.New("Product image is required")
	ErrMediaUnavailable   = errors.New("Media host is unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:     http.StatusInternalServerError,
	ErrClient:             http.StatusBadRequest,
	ErrNotFound:           http.StatusNotFound,
	ErrPhoneAlreadyUsed:   http.StatusConflict,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrEmptyCart:          http.StatusBadRequest,
	ErrInvalidOrderStatus: http.StatusBadRequest,
	ErrNotAnImage:         http.StatusBadRequest,
	ErrMissingImage:       http.StatusBadRequest,
	ErrMediaUnavailable:   http.StatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = http.StatusInternalServerError
	}
	return errStatusCode
}
