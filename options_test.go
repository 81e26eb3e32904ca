package remit_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptions(t *testing.T) {
	var opts remit.Options
	require.NoError(t, json.Unmarshal([]byte(`{"num": 7, "text": "hello", "bad": "x"}`), &opts))

	var num int
	require.NoError(t, opts.ReadOptions("num", &num))
	assert.Equal(t, 7, num)

	var text string
	require.NoError(t, opts.ReadOptions("text", &text))
	assert.Equal(t, "hello", text)

	// missing keys leave the destination untouched
	missing := 42
	require.NoError(t, opts.ReadOptions("missing", &missing))
	assert.Equal(t, 42, missing)

	var bad int
	err := opts.ReadOptions("bad", &bad)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestLoadGenesis(t *testing.T) {
	dir, err := ioutil.TempDir("", "genesis-")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "genesis.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"app_state": {"count": 3}}`), 0600))
	gen, err := remit.LoadGenesis(path)
	require.NoError(t, err)
	var count int
	require.NoError(t, gen.AppState.ReadOptions("count", &count))
	assert.Equal(t, 3, count)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, ioutil.WriteFile(broken, []byte(`{"app_state": `), 0600))
	_, err = remit.LoadGenesis(broken)
	assert.True(t, errors.ErrInput.Is(err))

	_, err = remit.LoadGenesis(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestChainInitializers(t *testing.T) {
	var calls []string
	first := initFunc(func(remit.Options, remit.KVStore) error {
		calls = append(calls, "first")
		return nil
	})
	failing := initFunc(func(remit.Options, remit.KVStore) error {
		calls = append(calls, "failing")
		return errors.ErrState
	})
	never := initFunc(func(remit.Options, remit.KVStore) error {
		calls = append(calls, "never")
		return nil
	})

	err := remit.ChainInitializers(first, failing, never).FromGenesis(nil, nil)
	assert.True(t, errors.ErrState.Is(err))
	assert.Equal(t, []string{"first", "failing"}, calls)
}

type initFunc func(remit.Options, remit.KVStore) error

func (fn initFunc) FromGenesis(opts remit.Options, db remit.KVStore) error {
	return fn(opts, db)
}
