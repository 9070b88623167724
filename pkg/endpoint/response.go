package endpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

type Response struct {
	etag         string
	cacheControl string
	writer       http.ResponseWriter
	request      *http.Request
	headers      func(w http.ResponseWriter)
}

func jsonHeaders(cacheControl, etag string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", cacheControl)

		if etag != "" {
			w.Header().Set("ETag", etag)
		}
	}
}

func NewResponseWithCache(salt string, maxAgeSeconds int, writer http.ResponseWriter, request *http.Request) *Response {
	if maxAgeSeconds < 0 {
		maxAgeSeconds = 0
	}

	etag := fmt.Sprintf(`%q`, strings.TrimSpace(salt))
	cacheControl := fmt.Sprintf("public, max-age=%d", maxAgeSeconds)

	return &Response{
		writer:       writer,
		request:      request,
		etag:         etag,
		cacheControl: cacheControl,
		headers:      jsonHeaders(cacheControl, etag),
	}
}

func NewResponseFrom(salt string, writer http.ResponseWriter, request *http.Request) *Response {
	return NewResponseWithCache(salt, 3600, writer, request)
}

func NewNoCacheResponse(writer http.ResponseWriter, request *http.Request) *Response {
	return &Response{
		writer:       writer,
		request:      request,
		cacheControl: "no-store",
		headers:      jsonHeaders("no-store", ""),
	}
}

func (r *Response) WithHeaders(callback func(w http.ResponseWriter)) {
	callback(r.writer)
}

func (r *Response) RespondOk(payload any) error {
	r.headers(r.writer)
	r.writer.WriteHeader(http.StatusOK)

	return json.NewEncoder(r.writer).Encode(payload)
}

func (r *Response) HasCache() bool {
	if r.etag == "" {
		return false
	}

	match := strings.TrimSpace(r.request.Header.Get("If-None-Match"))

	return match == r.etag
}

func (r *Response) RespondWithNotModified() {
	r.writer.WriteHeader(http.StatusNotModified)
}

// makeApiError builds an error whose Err mirrors the client-facing message.
func makeApiError(status int, prefix, msg string) *ApiError {
	message := fmt.Sprintf("%s: %s", prefix, msg)

	return &ApiError{Message: message, Status: status, Err: errors.New(message)}
}

// logApiError keeps the original cause on Err and logs it before responding.
func logApiError(status int, prefix, msg string, err error) *ApiError {
	slog.Error(err.Error(), "error", err)

	return &ApiError{
		Message: fmt.Sprintf("%s: %s", prefix, msg),
		Status:  status,
		Err:     err,
	}
}

func InternalError(msg string) *ApiError {
	return makeApiError(http.StatusInternalServerError, "Internal server error", msg)
}

func LogInternalError(msg string, err error) *ApiError {
	return logApiError(http.StatusInternalServerError, "Internal server error", msg, err)
}

func BadRequestError(msg string) *ApiError {
	return makeApiError(http.StatusBadRequest, "Bad request error", msg)
}

func LogBadRequestError(msg string, err error) *ApiError {
	return logApiError(http.StatusBadRequest, "Bad request error", msg, err)
}

func UnauthorisedError(msg string) *ApiError {
	return makeApiError(http.StatusUnauthorized, "Unauthorised request", msg)
}

func LogUnauthorisedError(msg string, err error) *ApiError {
	return logApiError(http.StatusUnauthorized, "Unauthorised request", msg, err)
}

func ForbiddenError(msg string) *ApiError {
	return makeApiError(http.StatusForbidden, "Forbidden", msg)
}

func ConflictError(msg string) *ApiError {
	return makeApiError(http.StatusConflict, "Conflict", msg)
}

func NotFound(msg string) *ApiError {
	return makeApiError(http.StatusNotFound, "Not found error", msg)
}

func ValidationFailed(errs map[string]any) *ApiError {
	message := "The given data was invalid"

	return &ApiError{
		Message: message,
		Status:  http.StatusBadRequest,
		Data:    errs,
		Err:     errors.New(message),
	}
}
