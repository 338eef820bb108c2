package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is reported when a handler returns a nil Response.
var ErrNilResponse = errors.New("nil response")

// Response is a function that renders HTTP responses.
// It sets headers, status code, and writes the response body.
// Rendering errors are passed to the error handler given to Wrap.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is an HTTP request handler operating on a request-scoped Context.
type HandlerFunc func(ctx *Context) Response

// ErrorHandler handles errors during request processing.
type ErrorHandler func(ctx *Context, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies middlewares to a handler, outermost first:
// Chain(h, m1, m2) is equivalent to m1(m2(h)).
func Chain(h HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Wrap adapts a HandlerFunc into a standard http.Handler.
// A nil errorHandler falls back to a generic 500 response.
func Wrap(h HandlerFunc, errorHandler ErrorHandler) http.Handler {
	if errorHandler == nil {
		errorHandler = defaultErrorHandler
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(w, r)
		response := h(ctx)
		if response == nil {
			errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response(w, r); err != nil {
			errorHandler(ctx, err)
		}
	})
}

func defaultErrorHandler(ctx *Context, err error) {
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
