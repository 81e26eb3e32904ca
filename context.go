package remit

// We pass context through context.Context between the contract, its handlers
// and the command line client. To do so, remit defines some common keys to
// store info, such as the caller of the current operation and the logger.
// Each extension may add its own keys to enrich the context with specific
// data.
//
// There should exist two functions for every XYZ of type T that we want to
// support in Context:
//
//   WithXYZ(Context, T) Context
//   GetXYZ(Context) (val T, ok bool)
//
// WithXYZ may panic if the value was previously set to avoid lower-level
// modules overwriting the value (eg. caller).

import (
	"context"

	"github.com/tendermint/tendermint/libs/log"
)

// DefaultLogger is used for all context that have not
// set anything themselves
var DefaultLogger = log.NewNopLogger()

type contextKey int // local to the remit module

const (
	contextKeyCaller contextKey = iota
	contextKeyLogger
)

// WithCaller sets the identity of the party invoking an operation. The caller
// is the identity that the operation authorizes against, like msg.sender of a
// contract call. It panics if the caller was already set.
func WithCaller(ctx context.Context, caller Address) context.Context {
	if _, ok := GetCaller(ctx); ok {
		panic("caller already set")
	}
	return context.WithValue(ctx, contextKeyCaller, caller.Clone())
}

// GetCaller returns the identity of the party invoking an operation.
func GetCaller(ctx context.Context) (Address, bool) {
	// (val, ok) form to return nil instead of panic if unset
	val, ok := ctx.Value(contextKeyCaller).(Address)
	return val, ok
}

// WithLogger sets the logger for this context.
func WithLogger(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// WithLogInfo accepts keyvalue pairs, and returns another
// context like this, after passing all the keyvals to the
// Logger
func WithLogInfo(ctx context.Context, keyvals ...interface{}) context.Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// GetLogger returns the currently set logger, or
// DefaultLogger if none was set
func GetLogger(ctx context.Context) log.Logger {
	val, ok := ctx.Value(contextKeyLogger).(log.Logger)
	if !ok {
		return DefaultLogger
	}
	return val
}
