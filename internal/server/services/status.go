package services

import (
	"net/http"

	"github.com/freshdeal/account-service/internal/server/models"
)

// Status is the structured outcome of a workflow. HTTPStatus mirrors the
// code the gateway ultimately answers with, so the edge never has to invent
// its own mapping.
type Status struct {
	Success    bool
	HTTPStatus int
	Message    string
	Errors     []string
}

// Session identifies a live session and its absolute unix expiry.
type Session struct {
	UUID   string
	Expiry int64
}

// AuthResult is the full answer of a login-shaped workflow. User and Session
// are only set on (possibly degraded) success; OTPRequired tells the client
// a verification step must follow.
type AuthResult struct {
	Status      *Status
	User        *models.PublicUser
	Session     *Session
	OTPRequired bool
}

func okStatus(httpStatus int) *Status {
	return &Status{Success: true, HTTPStatus: httpStatus, Message: "Request Successful"}
}

func failStatus(httpStatus int, message string, errs ...string) *Status {
	return &Status{HTTPStatus: httpStatus, Message: message, Errors: errs}
}

func internalStatus(message string) *Status {
	return failStatus(http.StatusInternalServerError, message)
}
