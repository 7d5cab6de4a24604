// Package bind разбирает тело и строку запроса в структуры и проверяет
// их валидатором. При ошибке ответ 400 уже записан.
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator"

	"github.com/cobusiness02/forgefyt/internal/http/query"
	"github.com/cobusiness02/forgefyt/internal/http/response"
	"github.com/cobusiness02/forgefyt/internal/lib/sl"
)

// JSON разбирает тело запроса в dst и проверяет его.
// Возвращает false, если ответ с ошибкой уже отправлен.
func JSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty body")
		}
		log.Warn("failed to decode request body", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.InvalidField("body", err.Error()))
		return false
	}
	return check(w, r, log, v, dst)
}

// Query разбирает параметры строки запроса в dst и проверяет их.
func Query(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, dst any) bool {
	if err := query.Decode(r.URL.Query(), dst); err != nil {
		log.Warn("failed to decode query", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.ErrorWithMessage(response.MsgValidationFailed, err.Error()))
		return false
	}
	return check(w, r, log, v, dst)
}

func check(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, dst any) bool {
	err := v.Struct(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		log.Warn("validation failed", sl.Err(err))
		response.Write(w, r, http.StatusBadRequest, response.ValidationError(verrs))
		return false
	}
	log.Error("validator misuse", sl.Err(err))
	response.Write(w, r, http.StatusInternalServerError, response.Internal())
	return false
}
