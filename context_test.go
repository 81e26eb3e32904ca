package remit

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContext(t *testing.T) {
	bg := context.Background()

	// try logger with default
	newLogger := log.NewTMLogger(os.Stdout)
	ctx := WithLogger(bg, newLogger)
	assert.Equal(t, DefaultLogger, GetLogger(bg))
	assert.Equal(t, newLogger, GetLogger(ctx))

	// caller - uninitialized
	val, ok := GetCaller(ctx)
	assert.Nil(t, val)
	assert.False(t, ok)
	// set
	caller := NewCondition("test", "caller", []byte{1}).Address()
	ctx = WithCaller(ctx, caller)
	val, ok = GetCaller(ctx)
	assert.Equal(t, caller, val)
	assert.True(t, ok)
	// no reset
	assert.Panics(t, func() { WithCaller(ctx, caller) })

	// changing the info, should modify the logger, but not the caller
	ctx2 := WithLogInfo(ctx, "foo", "bar")
	assert.NotEqual(t, GetLogger(ctx), GetLogger(ctx2))
	val, _ = GetCaller(ctx2)
	assert.Equal(t, caller, val)
}

func TestCallerIsCopied(t *testing.T) {
	caller := NewCondition("test", "caller", []byte{1}).Address()
	ctx := WithCaller(context.Background(), caller)
	caller[0] ^= 0xff
	val, _ := GetCaller(ctx)
	assert.NotEqual(t, caller, val)
}
