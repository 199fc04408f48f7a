package docscrape

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docscrape error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var fe *FindError
	var le *ListNotFoundError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &fe), errors.As(err, &le):
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	var fe *FindError
	var le *ListNotFoundError
	switch {
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &fe):
		return fe.Error()
	case errors.As(err, &le):
		return le.Error()
	}
	return "Internal error"
}

// FindError is returned when an expected HTML element is missing from a page.
// It usually means the site layout changed.
type FindError struct {
	Tag   string
	Attrs map[string]string
}

// Error implements the error interface.
func (e *FindError) Error() string {
	if len(e.Attrs) == 0 {
		return fmt.Sprintf("tag <%s> not found", e.Tag)
	}
	return fmt.Sprintf("tag <%s %s> not found", e.Tag, formatAttrs(e.Attrs))
}

// ListNotFoundError is returned when none of the candidate elements
// contains the marker text.
type ListNotFoundError struct {
	Tag    string
	Marker string
}

// Error implements the error interface.
func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("no <%s> containing %q found", e.Tag, e.Marker)
}

func formatAttrs(attrs map[string]string) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%q", k, attrs[k]))
	}
	return strings.Join(parts, " ")
}
