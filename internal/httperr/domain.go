package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ===============================
// Domain error taxonomy
// ===============================

type Kind int

const (
	KindValidation Kind = iota // client-correctable input problem
	KindNotFound               // referenced record missing or soft-deleted
	KindConflict               // unique-constraint violation
	KindDependency             // storage failed for some other reason
)

type DomainError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func ErrValidation(code, message string) error {
	return &DomainError{Kind: KindValidation, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}

func ErrDependency(code string, cause error) error {
	return &DomainError{Kind: KindDependency, Code: code, Message: "Server error.", Cause: cause}
}

func IsKind(err error, kind Kind) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// WriteDomain maps a domain error onto the HTTP status taxonomy.
// Unknown errors are treated as dependency failures; their detail
// stays server-side.
func WriteDomain(c *gin.Context, err error) {
	var de *DomainError
	if !errors.As(err, &de) {
		Write(c, http.StatusInternalServerError, "internal_error", "Server error.")
		return
	}

	switch de.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, de.Code, de.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, de.Code, de.Message)
	case KindConflict:
		Write(c, http.StatusConflict, de.Code, de.Message)
	default:
		Write(c, http.StatusInternalServerError, de.Code, "Server error.")
	}
}
