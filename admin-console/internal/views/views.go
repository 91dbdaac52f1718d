package views

import (
	"errors"
	"strings"
)

var ErrNothingToExport = errors.New("nothing to export")

// Confirmer asks the operator before a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ValidationError is a form problem caught before any request is sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// Banner is the dismissable error line every view shows above its content.
type Banner struct {
	Err string
}

func (b *Banner) DismissError() {
	b.Err = ""
}

func (b *Banner) fail(err error, fallback string) error {
	if msg := err.Error(); msg != "" {
		b.Err = msg
	} else {
		b.Err = fallback
	}
	return err
}

func containsFold(field, query string) bool {
	return strings.Contains(strings.ToLower(field), strings.ToLower(query))
}

func confirmed(confirm Confirmer, prompt string) bool {
	return confirm != nil && confirm.Confirm(prompt)
}
