package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
)

// All responses share the `{success, data?, error?, message?}` envelope.

func JSONSuccess(ctx iris.Context, data interface{}) {
	ctx.JSON(iris.Map{"success": true, "data": data})
}

func JSONSuccessMessage(ctx iris.Context, data interface{}, message string) {
	ctx.JSON(iris.Map{"success": true, "data": data, "message": message})
}

func CreateError(statusCode int, errCode string, message string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"success": false,
		"error":   errCode,
		"message": message,
	})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred. Please try again later.",
		ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found", ctx)
}

// Duplicate email is a domain conflict; like the other domain conflicts it
// answers 400, not 409.
func CreateEmailAlreadyRegistered(ctx iris.Context) {
	CreateError(iris.StatusBadRequest, "Conflict", "User with this email already exists.", ctx)
}

type validationError struct {
	ActualTag string `json:"tag"`
	Namespace string `json:"namespace"`
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Param     string `json:"param"`
}

func wrapValidationErrors(errs validator.ValidationErrors) []validationError {
	validationErrors := make([]validationError, 0, len(errs))
	for _, validationErr := range errs {
		validationErrors = append(validationErrors, validationError{
			ActualTag: validationErr.ActualTag(),
			Namespace: validationErr.Namespace(),
			Kind:      validationErr.Kind().String(),
			Type:      validationErr.Type().String(),
			Value:     validationErr.Param(),
			Param:     validationErr.Param(),
		})
	}
	return validationErrors
}

// HandleValidationErrors converts ctx.ReadJSON failures into a 400 envelope.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"success": false,
			"error":   "Validation Error",
			"message": "Request body failed validation",
			"fields":  wrapValidationErrors(errs),
		})
		return
	}

	CreateError(iris.StatusBadRequest, "Bad Request", err.Error(), ctx)
}
