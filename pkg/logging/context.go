package logging

import (
	"log/slog"
)

// WithOperator creates a logger with operator context.
// Use this to automatically tag every log line emitted while an operator
// tree node is open with the kind of operator producing it.
//
// Example:
//
//	log := logging.WithOperator("HashJoin")
//	log.Debug("build side materialized", "rows", n)
func WithOperator(name string) *slog.Logger {
	return GetLogger().With("operator", name)
}

// WithGroupKey creates a logger with group-key context.
// Used by HashAggregation and the set-algebra operators when logging
// diagnostics about a specific tuple key in their multiplicity maps.
//
// Example:
//
//	log := logging.WithGroupKey(key)
//	log.Debug("group finalized", "count", n)
func WithGroupKey(key string) *slog.Logger {
	return GetLogger().With("group_key", key)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Error("leaf source failed", "operator", "SliceSource")
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
