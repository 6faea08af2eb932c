// Package logger builds *slog.Logger values from functional options.
//
// New picks a JSON or text handler, applies the minimum level and attaches
// static attributes. Discard returns a logger that drops everything and is
// the default for library types that accept an optional logger.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "commentcheck"),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//	log.Debug("comment rejected", logger.Component("comment"), logger.Error(err))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
