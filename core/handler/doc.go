// Package handler defines the request handling primitives shared across the
// server: a Response function that renders the reply, a HandlerFunc that
// produces one from a request-scoped Context, and Middleware for wrapping
// handlers with cross-cutting behavior.
//
// Handlers compose with middleware via Chain and plug into net/http via Wrap:
//
//	h := handler.Chain(myHandler,
//		middleware.RequestID(),
//		middleware.Logging(),
//	)
//	http.ListenAndServe(":8000", handler.Wrap(h, nil))
//
// Handlers return a Response instead of writing directly, which keeps the
// decision phase (what to serve) separate from the write phase and lets
// middleware decorate headers after the handler has decided.
package handler
