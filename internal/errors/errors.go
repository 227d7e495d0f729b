package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the normalized error body produced by the centralized handler.
type Envelope struct {
	Error Detail `json:"error"`
}

// Detail carries the failure description. ErrorCode defaults to SERVER_ERROR
// and Details to null when the underlying failure carries none.
type Detail struct {
	Message   string      `json:"message"`
	ErrorCode string      `json:"errorCode"`
	Details   interface{} `json:"details"`
}

// New builds an envelope from its parts.
func New(message, code string, details interface{}) Envelope {
	if code == "" {
		code = "SERVER_ERROR"
	}
	return Envelope{Error: Detail{Message: message, ErrorCode: code, Details: details}}
}

// HTTPErrorHandler is the centralized responder wired into echo. Validation
// and authorization failures are answered inline by handlers and middleware
// and never reach this point; what arrives here is persistence and other
// unanticipated failure, normalized to the error envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal Server Error"
	code := "SERVER_ERROR"
	var details interface{}

	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch m := he.Message.(type) {
		case string:
			message = m
		case Envelope:
			message = m.Error.Message
			code = m.Error.ErrorCode
			details = m.Error.Details
		default:
			message = http.StatusText(status)
		}
	} else {
		log.Printf("unhandled error: %v", err)
	}

	if werr := c.JSON(status, New(message, code, details)); werr != nil {
		log.Printf("error responder: %v", werr)
	}
}
