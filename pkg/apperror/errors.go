package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories callers can switch on.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindAuth       Kind = "AUTH"
	KindNetwork    Kind = "NETWORK"
	KindBuild      Kind = "BUILD"
	KindSecurity   Kind = "SECURITY"
	KindInternal   Kind = "INTERNAL"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Kind       Kind   `json:"kind"`
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Transient  bool   `json:"transient"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel-style comparisons work with errors.Is.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsTransient reports whether err is a network failure worth retrying.
func IsTransient(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == KindNetwork && appErr.Transient
	}
	return false
}

// CodeOf returns the code of err, or an empty string for foreign errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// ---- Validation (VAL) ----

func Validation(message string) *AppError {
	return New(KindValidation, "VAL_000", message, http.StatusBadRequest)
}

func ErrInvalidSource() *AppError {
	return New(KindValidation, "VAL_001", "Source address is missing or invalid", http.StatusBadRequest)
}

func ErrInvalidDestination() *AppError {
	return New(KindValidation, "VAL_002", "Destination address is missing or invalid", http.StatusBadRequest)
}

func ErrDestinationIsSource() *AppError {
	return New(KindValidation, "VAL_003", "Destination must differ from source", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_004", "Amount must be a positive decimal", http.StatusBadRequest)
}

func ErrInvalidFee() *AppError {
	return New(KindValidation, "VAL_005", "Fee must be a positive decimal", http.StatusBadRequest)
}

func ErrInvalidTimeout() *AppError {
	return New(KindValidation, "VAL_006", "Timeout must be a positive number of seconds", http.StatusBadRequest)
}

func ErrInvalidAsset(reason string) *AppError {
	return New(KindValidation, "VAL_007", fmt.Sprintf("Invalid asset: %s", reason), http.StatusBadRequest)
}

func ErrMemoTooLong() *AppError {
	return New(KindValidation, "VAL_008", "Memo text exceeds 28 bytes", http.StatusBadRequest)
}

func ErrInvalidSlippage() *AppError {
	return New(KindValidation, "VAL_009", "Slippage must be between 0 and 100 percent", http.StatusBadRequest)
}

// ---- Keystore & Authentication (AUTH) ----

func ErrKeyNotFound() *AppError {
	return New(KindAuth, "AUTH_001", "No key stored for id", http.StatusNotFound)
}

func ErrAuthFailed() *AppError {
	return New(KindAuth, "AUTH_002", "User presence check failed", http.StatusUnauthorized)
}

func ErrStorageUnavailable(err error) *AppError {
	return Wrap(KindAuth, "AUTH_003", "Secure storage unavailable", http.StatusServiceUnavailable, err)
}

func ErrUnlockInProgress() *AppError {
	return New(KindAuth, "AUTH_004", "Another unlock is already in progress", http.StatusConflict)
}

func ErrKeyCorrupted(err error) *AppError {
	return Wrap(KindAuth, "AUTH_005", "Stored key is corrupted", http.StatusInternalServerError, err)
}

func ErrInvalidToken() *AppError {
	return New(KindAuth, "AUTH_006", "Invalid or expired session token", http.StatusUnauthorized)
}

// ---- Build (BLD) ----

func ErrInsufficientBalance() *AppError {
	return New(KindBuild, "BLD_001", "Amount exceeds available balance", http.StatusUnprocessableEntity)
}

func ErrBelowMinimumReserve(reserve string) *AppError {
	return New(KindBuild, "BLD_002",
		fmt.Sprintf("Amount is below the %s XLM minimum required to create the destination account", reserve),
		http.StatusUnprocessableEntity)
}

func ErrAccountNotFound(address string) *AppError {
	return New(KindBuild, "BLD_003", fmt.Sprintf("Account %s does not exist on the network", address), http.StatusNotFound)
}

func ErrMalformedEnvelope(err error) *AppError {
	return Wrap(KindBuild, "BLD_004", "Malformed transaction envelope", http.StatusBadRequest, err)
}

func ErrUnsupportedAsset() *AppError {
	return New(KindBuild, "BLD_005", "Asset is not transferable with classic operations", http.StatusUnprocessableEntity)
}

func ErrAccountBusy() *AppError {
	return New(KindBuild, "BLD_006", "Another transaction is in progress for this account", http.StatusConflict)
}

func ErrBuildFailed(err error) *AppError {
	return Wrap(KindBuild, "BLD_007", "Failed to build transaction", http.StatusInternalServerError, err)
}

func ErrNoPath() *AppError {
	return New(KindBuild, "BLD_008", "No conversion path found", http.StatusUnprocessableEntity)
}

func ErrSimulationFailed(reason string) *AppError {
	return New(KindBuild, "BLD_009", fmt.Sprintf("Contract simulation failed: %s", reason), http.StatusUnprocessableEntity)
}

// ---- Network & Submission (NET) ----

func ErrGatewayTimeout(err error) *AppError {
	e := Wrap(KindNetwork, "NET_001", "Network gateway timeout", http.StatusGatewayTimeout, err)
	e.Transient = true
	return e
}

func ErrRejected(resultCode string, err error) *AppError {
	msg := "Transaction rejected by the network"
	if resultCode != "" {
		msg = fmt.Sprintf("%s (%s)", msg, resultCode)
	}
	return Wrap(KindNetwork, "NET_002", msg, http.StatusUnprocessableEntity, err)
}

func ErrEnvelopeExpired() *AppError {
	return New(KindNetwork, "NET_003", "Transaction time bounds expired, rebuild required", http.StatusGone)
}

func ErrNetworkUnavailable(err error) *AppError {
	return Wrap(KindNetwork, "NET_004", "Network service unavailable", http.StatusBadGateway, err)
}

func ErrStatusUnknown(hash string) *AppError {
	return New(KindNetwork, "NET_005",
		fmt.Sprintf("Submission cancelled before a final result; transaction %s status unknown", hash),
		http.StatusAccepted)
}

// ---- Security gate (SEC) ----

func ErrScanUnsupported() *AppError {
	return New(KindSecurity, "SEC_001", "Scanning is not supported on this network", http.StatusUnprocessableEntity)
}

func ErrScanFailed(err error) *AppError {
	return Wrap(KindSecurity, "SEC_002", "Security scan failed", http.StatusBadGateway, err)
}

func ErrConfirmationRequired(reason string) *AppError {
	return New(KindSecurity, "SEC_003", fmt.Sprintf("Confirmation required: %s", reason), http.StatusPreconditionRequired)
}

func ErrBlocked(reason string) *AppError {
	return New(KindSecurity, "SEC_004", fmt.Sprintf("Blocked: %s", reason), http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindValidation, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(KindInternal, "SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
