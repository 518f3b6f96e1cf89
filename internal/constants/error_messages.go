package constants

const (
	ErrCodeProviderFailure    = "PROVIDER_FAILURE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgProviderFailure    = "provider failed to accept message"
	ErrMsgInternalError      = "Internal server error"
	ErrMsgInvalidRequestBody = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeProviderFailure:    ErrMsgProviderFailure,
	ErrCodeInternalError:      ErrMsgInternalError,
	ErrCodeInvalidRequestBody: ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

// GetHTTPStatus maps an error code to its response status. Provider failures are
// never classified further: every one of them is a 500.
func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody:
		return 400
	case ErrCodeProviderFailure, ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
