// Package logger builds configured *slog.Logger instances for the identity
// services.
//
// The factory supports JSON and text output, per-environment presets
// (development, production), static attributes attached to every record, and
// context extractors that inject request-scoped values (user ID, request ID)
// at log time through a handler decorator.
//
//	log := logger.New(
//	    logger.WithProduction("authkit"),
//	    logger.WithAttr(slog.String("version", version)),
//	)
//
// Typed attribute helpers (Error, UserID, Component, ...) keep attribute keys
// consistent across packages.
package logger
