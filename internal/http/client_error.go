package httpx

import (
	"net/http"

	apperrors "github.com/target/ticketdesk-api/internal/errors"
)

// Public error tags returned in the response envelope.
const (
	TagLoginFail     = "LOGIN_FAIL"
	TagNoAuth        = "NO_AUTH"
	TagInvalidParams = "INVALID_PARAMS"
	TagServiceError  = "SERVICE_ERROR"
)

// ClientError is the public view of an internal error.
type ClientError struct {
	Status int
	Tag    string
}

// ClientErrorFor maps an internal error to its public status and tag.
// Codes without an entry fail closed as SERVICE_ERROR.
func ClientErrorFor(err *apperrors.AppError) ClientError {
	if err == nil {
		return ClientError{Status: http.StatusInternalServerError, Tag: TagServiceError}
	}
	switch err.Code {
	case apperrors.ErrCodeLoginFail:
		return ClientError{Status: http.StatusForbidden, Tag: TagLoginFail}
	case apperrors.ErrCodeNoToken,
		apperrors.ErrCodeMalformedToken,
		apperrors.ErrCodeCtxNotInRequestState:
		return ClientError{Status: http.StatusForbidden, Tag: TagNoAuth}
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeValidation:
		return ClientError{Status: http.StatusBadRequest, Tag: TagInvalidParams}
	default:
		return ClientError{Status: http.StatusInternalServerError, Tag: TagServiceError}
	}
}

type errorEnvelope struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Type    string `json:"type"`
	ReqUUID string `json:"req_uuid"`
}
