package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
)

const maxRequestBody = 64 << 10

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidRequestBody):
		return http.StatusBadRequest, e.ErrInvalidRequestBody.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusBadRequest, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrUnknownPanel):
		return http.StatusBadRequest, e.ErrUnknownPanel.Error()
	case errors.Is(err, e.ErrEmptyMessage):
		return http.StatusBadRequest, e.ErrEmptyMessage.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrAssistantBusy):
		return http.StatusConflict, e.ErrAssistantBusy.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля и лишние данные после объекта отклоняются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), errors.Join(e.ErrInvalidRequestBody, err))
	}
	if dec.More() {
		return e.Wrap(whereami.WhereAmI(), e.ErrInvalidRequestBody)
	}

	return nil
}
