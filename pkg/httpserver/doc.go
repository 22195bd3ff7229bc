// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown driven by context cancellation.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    // ErrStart or ErrShutdown, joined with the cause
//	}
//
// Run blocks until ctx is cancelled or the listener fails. Cancel ctx on
// SIGINT/SIGTERM (for example with signal.NotifyContext) to stop the server.
package httpserver
