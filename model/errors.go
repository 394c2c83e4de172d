package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when a submit is attempted with input that trims
// to nothing. Callers ignore it silently.
var ErrEmptyInput = errors.New("empty input")

// ErrorKind classifies why an exchange with the endpoint failed.
type ErrorKind string

const (
	// KindNetwork: the request could not be sent or no response arrived.
	KindNetwork ErrorKind = "network"
	// KindProtocol: a response arrived but did not honour the reply contract.
	KindProtocol ErrorKind = "protocol"
)

// ExchangeError is the single error type an Exchanger reports.
type ExchangeError struct {
	Kind       ErrorKind
	StatusCode int // Set for protocol errors caused by a non-2xx status
	Err        error
}

func (e *ExchangeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s error", e.Kind)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}

// NetworkError wraps err as a network failure.
func NetworkError(err error) *ExchangeError {
	return &ExchangeError{Kind: KindNetwork, Err: err}
}

// ProtocolError wraps err as a protocol failure.
func ProtocolError(err error) *ExchangeError {
	return &ExchangeError{Kind: KindProtocol, Err: err}
}

// KindOf returns the kind of an exchange failure. Errors that are not an
// *ExchangeError are treated as network failures, since nothing was learned
// about the response.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return exErr.Kind
	}
	return KindNetwork
}

// FailureText is the user-visible text for a failed exchange.
func FailureText(err error) string {
	switch KindOf(err) {
	case KindProtocol:
		var exErr *ExchangeError
		if errors.As(err, &exErr) && exErr.StatusCode != 0 {
			return fmt.Sprintf("The chat server answered with status %d. Send your message again to retry.", exErr.StatusCode)
		}
		return "The chat server sent a reply I could not read. Send your message again to retry."
	default:
		return "Could not reach the chat server. Send your message again to retry."
	}
}
