package response

import (
	"errors"

	"github.com/Jai-Phiranesh/Employee-Attendance-System/internal/domain"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null in the envelope.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

func OK(data interface{}) Resp {
	return New(CodeOK, CodeMsgMap[CodeOK], data)
}

func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FromError maps the domain error taxonomy to envelope codes; this is the
// one place error kinds become response codes.
func FromError(err error) Resp {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return Error(CodeBadRequest, ve.Msg)
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return Error(CodeConflict, err.Error())
	case errors.Is(err, domain.ErrNoActiveSession):
		return Error(CodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmailTaken):
		return Error(CodeConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return Error(CodeUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return Error(CodeNotFound, err.Error())
	default:
		return Error(CodeServerError, err.Error())
	}
}
