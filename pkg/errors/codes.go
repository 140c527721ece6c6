package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
// Codes follow the MODULE_NNN convention so the module can be recovered
// from the code alone (see ModuleForCode).
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCanceled           ErrorCode = "COMMON_017"
)

// Aliases used by call sites that predate the module prefixes.
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeRateLimit    = ErrCodeTooManyRequests
	CodeUnavailable  = ErrCodeServiceUnavailable
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Identifier Module Error Codes
const (
	ErrCodeCASEmpty     ErrorCode = "CAS_001"
	ErrCodeCASMalformed ErrorCode = "CAS_002"
)

// Name Module Error Codes
const (
	ErrCodeNameUnresolved ErrorCode = "NAME_001"
	ErrCodeNameTooShort   ErrorCode = "NAME_002"
)

// Chemical Module Error Codes
const (
	ErrCodeChemicalNotFound  ErrorCode = "CHEM_001"
	ErrCodeChemicalLocalOnly ErrorCode = "CHEM_002"
	ErrCodeBatchTooLarge     ErrorCode = "CHEM_003"
	ErrCodeDictionaryCorrupt ErrorCode = "CHEM_004"
)

// Data Source Module Error Codes
const (
	ErrCodeDataSourceUnavailable ErrorCode = "SRC_001"
	ErrCodeDataSourceRateLimited ErrorCode = "SRC_002"
	ErrCodeDataSourceParseError  ErrorCode = "SRC_003"
	ErrCodeDataSourceBadStatus   ErrorCode = "SRC_004"
	ErrCodeDataSourceNoRecord    ErrorCode = "SRC_005"
)

// Cache Module Error Codes
const (
	ErrCodeCacheMiss        ErrorCode = "CACHE_001"
	ErrCodeCacheUnavailable ErrorCode = "CACHE_002"
	ErrCodeCacheCodec       ErrorCode = "CACHE_003"
)

// Export Module Error Codes
const (
	ErrCodeExportFormat ErrorCode = "EXP_001"
	ErrCodeExportRender ErrorCode = "EXP_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCanceled:           499,

	ErrCodeCASEmpty:     http.StatusBadRequest,
	ErrCodeCASMalformed: http.StatusBadRequest,

	ErrCodeNameUnresolved: http.StatusNotFound,
	ErrCodeNameTooShort:   http.StatusBadRequest,

	ErrCodeChemicalNotFound:  http.StatusNotFound,
	ErrCodeChemicalLocalOnly: http.StatusOK,
	ErrCodeBatchTooLarge:     http.StatusRequestEntityTooLarge,
	ErrCodeDictionaryCorrupt: http.StatusInternalServerError,

	ErrCodeDataSourceUnavailable: http.StatusBadGateway,
	ErrCodeDataSourceRateLimited: http.StatusTooManyRequests,
	ErrCodeDataSourceParseError:  http.StatusBadGateway,
	ErrCodeDataSourceBadStatus:   http.StatusBadGateway,
	ErrCodeDataSourceNoRecord:    http.StatusNotFound,

	ErrCodeCacheMiss:        http.StatusNotFound,
	ErrCodeCacheUnavailable: http.StatusServiceUnavailable,
	ErrCodeCacheCodec:       http.StatusInternalServerError,

	ErrCodeExportFormat: http.StatusBadRequest,
	ErrCodeExportRender: http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization error",
	ErrCodeCanceled:           "request canceled",

	ErrCodeCASEmpty:     "CAS number is empty",
	ErrCodeCASMalformed: "CAS number is malformed",

	ErrCodeNameUnresolved: "name does not match any dictionary entry",
	ErrCodeNameTooShort:   "name query is too short",

	ErrCodeChemicalNotFound:  "chemical not found",
	ErrCodeChemicalLocalOnly: "only local dictionary data is available",
	ErrCodeBatchTooLarge:     "too many identifiers in one request",
	ErrCodeDictionaryCorrupt: "bundled dictionary is inconsistent",

	ErrCodeDataSourceUnavailable: "upstream data source unavailable",
	ErrCodeDataSourceRateLimited: "upstream data source rate limit exceeded",
	ErrCodeDataSourceParseError:  "upstream response could not be parsed",
	ErrCodeDataSourceBadStatus:   "upstream returned an unexpected status",
	ErrCodeDataSourceNoRecord:    "upstream has no matching record",

	ErrCodeCacheMiss:        "cache miss",
	ErrCodeCacheUnavailable: "cache unavailable",
	ErrCodeCacheCodec:       "cache value could not be encoded",

	ErrCodeExportFormat: "unsupported export format",
	ErrCodeExportRender: "export rendering failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}
