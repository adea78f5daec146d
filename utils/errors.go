package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// CreateError writes a JSON error body with the given status, short code and
// human-readable message.
func CreateError(statusCode int, code string, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{"error": code, "message": message})
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(iris.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred", ctx)
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// HandleValidationErrors responds with 400 and the failing fields when
// ReadJSON rejects a payload, either for malformed JSON or for validator
// tag violations.
func HandleValidationErrors(err error, ctx iris.Context) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]fieldError, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, fieldError{Field: e.Field(), Rule: e.Tag()})
		}
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"error":   "Validation Error",
			"message": "One or more fields failed validation",
			"fields":  fields,
		})
		return
	}

	CreateError(iris.StatusBadRequest, "Bad Request", "Invalid request payload", ctx)
}
