package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"auction-market/internal/marketerrors"
	model "auction-market/internal/models"
	"auction-market/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalHeader carries the authenticated caller address
const PrincipalHeader = "X-Principal"

var errMissingPrincipal = errors.New("missing or malformed " + PrincipalHeader + " header")

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// Principal extracts the caller address or aborts the request with 401
func Principal(c *gin.Context, handlerName string) (model.Address, bool) {
	addr, err := model.ParseAddress(c.GetHeader(PrincipalHeader))
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, fmt.Errorf("%w: %w", errMissingPrincipal, err), "unauthenticated")
		utils.Warn(handlerName+": missing principal", map[string]any{"error": err.Error()})
		return model.ZeroAddress, false
	}
	return addr, true
}

// IDParam parses a positive integer path parameter or aborts the request with 400
func IDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid %s %q", name, c.Param(name)), "invalid "+name)
		return 0, false
	}
	return id, true
}

// AddressParam parses an address from a path parameter or aborts the request with 400
func AddressParam(c *gin.Context, name string) (model.Address, bool) {
	return ParseAddressField(c, name, c.Param(name))
}

// ParseAddressField parses a request address or aborts the request with 400
func ParseAddressField(c *gin.Context, name, raw string) (model.Address, bool) {
	addr, err := model.ParseAddress(raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid "+name)
		return model.ZeroAddress, false
	}
	return addr, true
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, marketerrors.ErrTokenNotFound), errors.Is(err, marketerrors.ErrCertificateNotFound):
		return http.StatusNotFound, "token not found"
	case errors.Is(err, marketerrors.ErrNotSeller),
		errors.Is(err, marketerrors.ErrNotSelectedBidder),
		errors.Is(err, marketerrors.ErrNotTokenOwner),
		errors.Is(err, marketerrors.ErrNotMinter),
		errors.Is(err, marketerrors.ErrNotContractOwner):
		return http.StatusForbidden, "caller not authorized"
	case errors.Is(err, marketerrors.ErrInsufficientBalance),
		errors.Is(err, marketerrors.ErrInsufficientAllowance),
		errors.Is(err, marketerrors.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient funds"
	case errors.Is(err, marketerrors.ErrInvalidAddress),
		errors.Is(err, marketerrors.ErrInvalidProfile),
		errors.Is(err, marketerrors.ErrInvalidDuration),
		errors.Is(err, marketerrors.ErrInvalidAmount),
		errors.Is(err, marketerrors.ErrOverflow):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, marketerrors.ErrReverted):
		return http.StatusConflict, "transaction reverted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, writes the error envelope and logs the failure
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
