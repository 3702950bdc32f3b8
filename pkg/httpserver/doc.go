// Package httpserver runs the application's http.Server with graceful
// shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.New(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithOnShutdown(func(context.Context) error { return store.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server", logger.Error(err))
//	}
package httpserver
