package httperr

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var messages = map[string]string{
	"invalid_request":              "Invalid request payload.",
	"missing_authorization_header": "Authorization header is required.",
	"invalid_authorization_header": "Use: Authorization: Bearer <token>.",
	"invalid_token":                "Invalid or expired token.",
	"invalid_credentials":          "Invalid credentials.",
	"forbidden_role":               "Your role cannot access this resource.",
	"email_already_exists":         "Email already exists.",
	"invalid_role":                 "Role must be user or merchant.",
	"merchant_not_found":           "Merchant not found.",
	"service_not_found":            "Service not found.",
	"service_inactive":             "Service is not active.",
	"service_merchant_mismatch":    "Service does not belong to this merchant.",
	"order_not_found":              "Order not found.",
	"room_not_found":               "Chat room not found.",
	"missing_items":                "Order needs at least one item.",
	"invalid_quantity":             "Quantity must be between 1 and 1000.",
	"invalid_price":                "Price must be between 0 and 1000000 with at most two decimals.",
	"order_total_too_large":        "Order total is too large.",
	"invalid_status":               "Unknown order status.",
	"invalid_transition":           "Status transition not allowed.",
	"not_merchant_owner":           "You do not manage this merchant.",
	"not_order_participant":        "You cannot access this order.",
	"not_room_participant":         "You are not a participant of this room.",
	"empty_text":                   "Message text is required.",
	"text_too_long":                "Message text is too long.",
	"user_not_found":               "User no longer exists.",
	"invalid_id":                   "Path id must be a positive integer.",
	"invalid_email_domain":         "The e-mail domain does not look valid.",
	"invalid_coordinates":          "Latitude must be within -90..90 and longitude within -180..180.",
	"invalid_rating":               "Rating must be within 0..5.",
	"missing_image":                "Send the image in the 'image' form field.",
	"image_too_large":              "Image must be at most 5 MiB.",
	"invalid_image_type":           "Only image uploads are accepted.",
	"rate_limited":                 "Too many requests, slow down.",
	"request_timeout":              "Request took too long.",
	"internal_error":               "Internal server error.",
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Abort(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: messageFor(code),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Status maps an error returned by a use case to its HTTP status.
func Status(err error) int {
	kind, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInvalidTransition:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// Handle writes err as a JSON error body. Errors that are not business
// errors are attached to the gin context for the request logger and
// reported as internal_error, or request_timeout (503) when the request
// deadline expired.
func Handle(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, Status(err), be.Code, messageFor(be.Code))
		return
	}
	_ = c.Error(err)
	if errors.Is(err, context.DeadlineExceeded) {
		Write(c, http.StatusServiceUnavailable, "request_timeout", messageFor("request_timeout"))
		return
	}
	Internal(c, "internal_error", "Internal server error.")
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}
