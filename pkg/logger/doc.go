// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.Development, "lrucheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "scenario passed",
//	    logger.Scenario("evicts least recent"),
//	    logger.Duration(time.Since(start)),
//	)
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks for every record.
//
// Library packages default to NewNop and only log when a logger is injected.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("done", logger.Error(err))
//
// needs no extra nil check.
package logger
