package exceptions

import (
	"errors"
	"fmt"
	"preop-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

// BuildNewCustomError records where the error was raised. When err already is
// a CustomError its locations are kept so the full path shows up in logs.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customErr := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(3)},
	}

	if err == nil {
		return customErr
	}

	var wrapped *CustomError
	if errors.As(err, &wrapped) {
		customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, wrapped.DevMessage)
		customErr.Locations = append(customErr.Locations, wrapped.Locations...)
		return customErr
	}

	customErr.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	return customErr
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
