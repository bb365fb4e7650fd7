package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// AppError represents an application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequestError creates a 400 Bad Request error
func BadRequestError(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// UnauthorizedError creates a 401 Unauthorized error
func UnauthorizedError(message string, err error) *AppError {
	return NewAppError(http.StatusUnauthorized, message, err)
}

// ForbiddenError creates a 403 Forbidden error
func ForbiddenError(message string, err error) *AppError {
	return NewAppError(http.StatusForbidden, message, err)
}

// NotFoundError creates a 404 Not Found error
func NotFoundError(message string, err error) *AppError {
	return NewAppError(http.StatusNotFound, message, err)
}

// ConflictError creates a 409 Conflict error
func ConflictError(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// Business rule violations raised by the order and coupon flows
var (
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidItem        = errors.New("invalid item")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCouponNotFound     = errors.New("coupon not found")
	ErrCouponInactive     = errors.New("coupon is inactive")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponUsageReached = errors.New("coupon usage limit reached")
	ErrCouponBelowMinimum = errors.New("order amount is below the coupon minimum")
	ErrConflict           = errors.New("concurrent update conflict, please retry")
	ErrDuplicate          = errors.New("duplicate entry")
)

var businessErrors = []error{
	ErrEmptyOrder,
	ErrInvalidItem,
	ErrInsufficientStock,
	ErrCouponNotFound,
	ErrCouponInactive,
	ErrCouponExpired,
	ErrCouponUsageReached,
	ErrCouponBelowMinimum,
	ErrDuplicate,
}

// IsBusinessError reports whether err is a rule violation the client can fix
func IsBusinessError(err error) bool {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ClassifyDBError converts driver errors into the sentinels above.
// Errors it does not recognise are returned unchanged.
func ClassifyDBError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23514":
			if pgErr.ConstraintName == "chk_products_stock" {
				return fmt.Errorf("%w: %v", ErrInsufficientStock, err)
			}
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %v", ErrConflict, err)
		}
	}
	return err
}

// RespondError writes err using the API error taxonomy.
// Unexpected errors are logged and hidden behind a generic message.
func RespondError(c *gin.Context, fallback string, err error) {
	err = ClassifyDBError(err)

	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		if appErr.Code >= http.StatusInternalServerError {
			LogError("%s: %v", appErr.Message, appErr.Err)
			Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		Error(c, appErr.Code, appErr.Message, errString(appErr.Err))
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, fallback+": not found")
	case errors.Is(err, ErrConflict):
		Conflict(c, "Request conflicted with a concurrent update, please retry", nil)
	case IsBusinessError(err):
		BadRequest(c, err.Error(), nil)
	default:
		LogError("%s: %v", fallback, err)
		InternalServerError(c, fallback, nil)
	}
}

func errString(err error) interface{} {
	if err == nil {
		return nil
	}
	return err.Error()
}
