package span

import (
	"errors"
	"strings"
)

type Error struct {
	Items []*ErrorItem `json:"items,omitempty"`
}

// Error joins the wrapped messages from the outermost to the innermost, followed by the root cause.
func (r *Error) Error() string {
	parts := make([]string, 0, len(r.Items)+1)
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].Message != nil {
			parts = append(parts, *r.Items[i].Message)
		}
	}
	if cause := r.Unwrap(); cause != nil {
		parts = append(parts, cause.Error())
	}

	return strings.Join(parts, ": ")
}

func (r *Error) Unwrap() error {
	for _, item := range r.Items {
		if item.Error != nil {
			return item.Error
		}
	}

	return nil
}

type ErrorItem struct {
	Span    *Span   `json:"span,omitempty"`
	Caller  *Caller `json:"caller,omitempty"`
	Message *string `json:"message,omitempty"`
	Error   error   `json:"error,omitempty"`
}

func NewError(span *Span, message string, err error) error {
	caller := NewCaller()
	if err == nil {
		return &Error{
			Items: []*ErrorItem{
				{
					Span:    span,
					Caller:  caller,
					Message: &message,
					Error:   nil,
				},
			},
		}
	}

	var e *Error
	if errors.As(err, &e) {
		e.Items = append(e.Items, &ErrorItem{
			Span:    span,
			Caller:  caller,
			Message: &message,
			Error:   nil,
		})
		return e
	}

	return &Error{
		Items: []*ErrorItem{
			{
				Span:    span,
				Caller:  caller,
				Message: &message,
				Error:   err,
			},
		},
	}
}
