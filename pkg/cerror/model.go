package cerror

import (
	"errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap/zapcore"
)

type CustomError struct {
	error          `json:"-"`
	HttpStatusCode int             `json:"httpStatus"`
	Code           string          `json:"code,omitempty"`
	Message        string          `json:"message"`
	LogMessage     string          `json:"-"`
	LogSeverity    zapcore.Level   `json:"-"`
	LogFields      []zapcore.Field `json:"-"`
}

func NewError(httpStatusCode int, message string, logFields ...zapcore.Field) *CustomError {
	return &CustomError{
		HttpStatusCode: httpStatusCode,
		Message:        message,
		LogMessage:     message,
		LogSeverity:    zapcore.ErrorLevel,
		LogFields:      logFields,
	}
}

func (cerr *CustomError) SetSeverity(severity zapcore.Level) *CustomError {
	cerr.LogSeverity = severity
	return cerr
}

func (cerr *CustomError) SetCode(code string) *CustomError {
	cerr.Code = code
	return cerr
}

func (cerr *CustomError) Error() string {
	return cerr.Message
}

func (cerr *CustomError) SerializeCerror() error {
	var marshalledToByte []byte
	marshalledToByte, _ = json.Marshal(&cerr)

	return errors.New(string(marshalledToByte))
}
