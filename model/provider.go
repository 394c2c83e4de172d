package model

import "context"

// Exchanger performs one request/response exchange with the chat endpoint.
//
// This interface is defined in the model package (not client) so that the
// widget and client packages can both depend on it without importing each
// other. Implementations must report failures as *ExchangeError.
type Exchanger interface {
	Exchange(ctx context.Context, message string) (string, error)
}

// ExchangerFunc adapts a function to the Exchanger interface.
type ExchangerFunc func(ctx context.Context, message string) (string, error)

func (f ExchangerFunc) Exchange(ctx context.Context, message string) (string, error) {
	return f(ctx, message)
}

// Result is the outcome of one exchange: either a reply or a classified
// failure, never both.
type Result struct {
	Reply string
	Err   error
}

// OK reports whether the exchange produced a reply.
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the failure kind, or "" for a successful result.
func (r Result) Kind() ErrorKind {
	return KindOf(r.Err)
}
