package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prestigedrive/prestigedrive/internal/booking"
	"gorm.io/gorm"
)

// ErrorResponse 统一的 JSON 错误信封。
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// 错误码
const (
	codeBadRequest      = "bad_request"
	codeValidation      = "validation_error"
	codeNotFound        = "not_found"
	codeUnauthorized    = "unauthorized"
	codeForbidden       = "forbidden"
	codeTooManyRequests = "too_many_requests"
	codeInternal        = "internal_error"

	// 预订资格检查的三类失败
	codeMissingDate     = "missing_date"
	codeInvalidRange    = "invalid_range"
	codeDateUnavailable = "date_unavailable"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeDomainError 把领域错误翻译为 HTTP 响应：
// - 资格检查失败 -> 422 + 专属错误码（前端据此提示）
// - 记录不存在 -> 404
// - 入参校验失败 -> 400
// - 其余 -> 500（对外不暴露内部细节）
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrMissingDate):
		writeError(w, http.StatusUnprocessableEntity, codeMissingDate, err.Error())
	case errors.Is(err, booking.ErrInvalidRange):
		writeError(w, http.StatusUnprocessableEntity, codeInvalidRange, err.Error())
	case errors.Is(err, booking.ErrDateUnavailable):
		writeError(w, http.StatusUnprocessableEntity, codeDateUnavailable, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "record not found")
	default:
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			writeError(w, http.StatusBadRequest, codeValidation, vErrs.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, codeInternal, "could not complete operation")
	}
}

// listResponse 分页列表的统一返回结构。
type listResponse struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
}
