package auth

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func ValidateLogin(req LoginRequest) error {
	return validate.Struct(req)
}
