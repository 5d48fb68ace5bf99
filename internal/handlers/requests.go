package handlers

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator adapts go-playground/validator to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// SessionHandoffRequest is posted by the external login flow once it has a token.
type SessionHandoffRequest struct {
	Token    string `form:"token" validate:"required,max=4096"`
	Username string `form:"username" validate:"max=128"`
	Role     string `form:"role" validate:"max=64"`
}
