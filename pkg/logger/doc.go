// Package logger builds *slog.Logger values for the application.
//
// New takes functional options for level, format, output, static attributes
// and ContextExtractor callbacks. Extractors run on every record, so
// request-scoped values such as the request id are attached without passing
// loggers around:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.AppName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// The attribute helpers keep key names consistent across packages:
//
//	log.InfoContext(ctx, "tier changed",
//		logger.SessionID(id),
//		logger.TierChange("free", "pro"),
//	)
//
// Error and Errors return an empty Attr for nil errors, which slog drops.
package logger
