// Package logger provides a process-wide zap logger with context scoping.
//
// Init builds the logger once from Config; L returns it (a dev logger is
// built lazily when Init was never called). Components attach their own fields
// with Named or With, and request-scoped loggers travel in a context via
// ToContext and From.
//
//	logger.Init(logger.Config{Env: cfg.Log.Env, Level: cfg.Log.Level})
//	defer logger.Sync()
//
//	log := logger.From(ctx)
//	log.Info("config refreshed", logger.Component("config"))
package logger
