// Package server provides an http.Server wrapper with synchronous binding,
// graceful shutdown, and environment-based configuration.
//
// The listen address is acquired before serving begins, so startup failures
// surface immediately and are classified: a busy port returns an error
// wrapping ErrAddrInUse, any other bind problem wraps ErrBindFailed.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until the context is canceled (graceful shutdown) or the
// server fails.
package server
