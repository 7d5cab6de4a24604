// Package response содержит типы JSON-ответов API и функции их записи.
// Успешный ответ несёт success=true, ошибка несёт поле error и, при
// необходимости, message и details.
package response

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/collection"
)

// Response стандартный успешный ответ.
type Response struct {
	Success    bool        `json:"success" example:"true"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination сведения о странице списка.
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"3"`
	Pages int `json:"pages" example:"1"`
}

// FieldError нарушение правила проверки в одном поле.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"must be a valid email"`
}

// ErrorResponse ответ с ошибкой.
type ErrorResponse struct {
	Error   string       `json:"error" example:"Validation failed"`
	Message string       `json:"message,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

// Тексты ошибок, общие для всех обработчиков.
const (
	MsgValidationFailed = "Validation failed"
	MsgInternal         = "Internal server error"
)

// OK успешный ответ с данными.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// OKWithMessage успешный ответ с сообщением и данными.
func OKWithMessage(msg string, data any) Response {
	return Response{Success: true, Message: msg, Data: data}
}

// OKWithPage успешный ответ со страницей списка.
func OKWithPage[T any](page collection.Page[T]) Response {
	return Response{
		Success: true,
		Data:    page.Items,
		Pagination: &Pagination{
			Page:  page.Page,
			Limit: page.Limit,
			Total: page.Total,
			Pages: page.TotalPages,
		},
	}
}

// Error ответ с текстом ошибки.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// ErrorWithMessage ответ с текстом ошибки и пояснением.
func ErrorWithMessage(msg, message string) ErrorResponse {
	return ErrorResponse{Error: msg, Message: message}
}

// Internal ответ на непредвиденную ошибку.
func Internal() ErrorResponse {
	return ErrorResponse{Error: MsgInternal}
}

// Unauthorized ответ на запрос без данных пользователя.
func Unauthorized() ErrorResponse {
	return ErrorResponse{Error: "Access denied", Message: "No token provided"}
}

// InvalidField ответ об ошибке проверки одного поля.
func InvalidField(field, message string) ErrorResponse {
	return ErrorResponse{Error: MsgValidationFailed, Details: []FieldError{{Field: field, Message: message}}}
}

// ValidationError переводит ошибки валидатора в список нарушений по полям.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	details := make([]FieldError, 0, len(errs))
	for _, err := range errs {
		details = append(details, FieldError{Field: fieldPath(err), Message: describe(err)})
	}
	return ErrorResponse{Error: MsgValidationFailed, Details: details}
}

// ValidationFailed переводит ошибку проверки коллекции в ответ 400.
func ValidationFailed(err *collection.ValidationError) ErrorResponse {
	return InvalidField(err.Field, err.Message)
}

// Write записывает статус и JSON-тело ответа.
func Write(w http.ResponseWriter, r *http.Request, status int, body any) {
	render.Status(r, status)
	render.JSON(w, r, body)
}

// fieldPath путь поля без имени корневой структуры: exercises[0].name.
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

func describe(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(err.Param(), " ", ", "))
	case "eq":
		return fmt.Sprintf("must be %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", err.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in format %s", err.Param())
	case "clock":
		return "must be a time in HH:MM format"
	default:
		return "is invalid"
	}
}
