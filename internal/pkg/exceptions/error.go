package exceptions

import (
	"errors"
	"fmt"
	"runtime"
)

// Location records where a CustomError was built or wrapped.
type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

// CustomError carries both the client-safe message written to the HTTP
// response and the developer message written to the logs. DevMessage and
// Locations are only serialized outside production.
type CustomError struct {
	StatusCode    int        `json:"-"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Err           error      `json:"-"`
	Locations     []Location `json:"locations,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.DevMessage, e.Err)
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err with HTTP semantics. When err is already a
// CustomError the original status and messages win and only the call site
// is appended, so the first classification survives re-wrapping.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) error {
	loc := callerLocation(2)

	var custom *CustomError
	if errors.As(err, &custom) {
		custom.Locations = append(custom.Locations, loc)
		return custom
	}

	return &CustomError{
		StatusCode:    statusCode,
		Success:       false,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Err:           err,
		Locations:     []Location{loc},
	}
}

func callerLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", Line: 0, FunctionName: "unknown"}
	}
	fn := "unknown"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return Location{File: file, Line: line, FunctionName: fn}
}
