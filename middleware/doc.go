// Package middleware provides the cross-cutting request decorations used
// by the server: security headers, CORS, structured request logging, and
// request IDs.
//
// All middleware follow the same shape: a zero-config constructor with
// sane defaults and a WithConfig variant taking a config struct with an
// optional Skip predicate.
//
//	h := handler.Chain(responder,
//		middleware.RequestID(),
//		middleware.LoggingWithLogger(log),
//		middleware.SecurityHeaders(),
//		middleware.CORS(),
//	)
package middleware
