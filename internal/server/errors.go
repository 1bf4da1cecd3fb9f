package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-roaster/internal/generation"
	"github.com/jonathan/resume-roaster/internal/llm"
	"github.com/jonathan/resume-roaster/internal/profile"
	"github.com/jonathan/resume-roaster/internal/roast"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline
// error.
func HTTPStatus(err error) int {
	var genVal *generation.ValidationError
	var roastVal *roast.ValidationError
	var profVal *profile.ValidationError
	var parseErr *profile.ParseError

	switch {
	case errors.As(err, &genVal), errors.As(err, &roastVal), errors.As(err, &profVal):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusBadGateway
	case errors.Is(err, llm.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the error text safe to expose to clients.
// Validation problems are actionable and pass through verbatim; server
// side failures collapse to a generic retry hint.
func PublicMessage(err error, status int) string {
	switch {
	case status < http.StatusInternalServerError:
		return err.Error()
	case status == http.StatusBadGateway:
		return "The model returned an unusable response. Please try again."
	case status == http.StatusServiceUnavailable:
		return "The generation service is temporarily unavailable. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
