package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/store/iavl"
	"github.com/iov-one/remit/x/remittance"
	"github.com/tendermint/tendermint/libs/log"
)

// stateName is the name of the database inside of the home directory.
const stateName = "state"

// stateFlags are the flags shared by all commands that use the state.
type stateFlags struct {
	home     *string
	logLevel *string
}

func flState(fl *flag.FlagSet) stateFlags {
	return stateFlags{
		home:     fl.String("home", defaultHome(), "Directory the state is stored in. Defaults to $REMIT_HOME."),
		logLevel: fl.String("log-level", "info", "Log level, one of debug, info, error or none."),
	}
}

// newContext returns a context carrying the logger and, if not empty, the
// caller.
func (s stateFlags) newContext(caller remit.Address) (context.Context, error) {
	logger, err := newLogger(*s.logLevel)
	if err != nil {
		return nil, err
	}
	ctx := remit.WithLogger(context.Background(), logger)
	if len(caller) != 0 {
		ctx = remit.WithCaller(ctx, caller)
	}
	return ctx, nil
}

func newLogger(level string) (log.Logger, error) {
	allowed, err := log.AllowLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %s", err)
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	return log.NewFilter(logger, allowed), nil
}

// openState returns the committed state stored in the home directory,
// creating an empty one if missing.
func openState(home string) (iavl.CommitStore, error) {
	if err := os.MkdirAll(home, 0700); err != nil {
		return iavl.CommitStore{}, fmt.Errorf("cannot create home directory: %s", err)
	}
	db := iavl.NewCommitStore(home, stateName)
	if err := db.LoadLatestVersion(); err != nil {
		db.Close()
		return iavl.CommitStore{}, fmt.Errorf("cannot load state: %s", err)
	}
	return db, nil
}

// withContract loads the contract from the state in home and calls fn. If
// commit is true and fn succeeds, all changes are persisted.
func withContract(home string, commit bool, fn func(*remittance.Contract) error) error {
	db, err := openState(home)
	if err != nil {
		return err
	}
	defer db.Close()

	c, err := remittance.Load(db.Adapter())
	switch {
	case errors.ErrNotFound.Is(err):
		return fmt.Errorf("no contract in %s, run init first", home)
	case err != nil:
		return fmt.Errorf("cannot load contract: %s", err)
	}

	if err := fn(c); err != nil {
		return err
	}
	if commit {
		if _, err := db.Commit(); err != nil {
			return fmt.Errorf("cannot commit state: %s", err)
		}
	}
	return nil
}

// opError describes a rejected operation with the code it was rejected
// with. Internal errors and recovered panics are redacted.
func opError(op string, err error) error {
	code, msg := errors.Info(errors.Redact(err, false), false)
	return fmt.Errorf("%s rejected (code %d): %s", op, code, msg)
}

// eventView is the JSON representation of an event.
type eventView struct {
	Type  string           `json:"type"`
	Event remittance.Event `json:"event"`
}

// writeEvents writes each event as a JSON document in its own line.
func writeEvents(out io.Writer, events []remittance.Event) error {
	enc := json.NewEncoder(out)
	for _, e := range events {
		if err := enc.Encode(eventView{Type: e.Name(), Event: e}); err != nil {
			return fmt.Errorf("cannot serialize %s event: %s", e.Name(), err)
		}
	}
	return nil
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("cannot serialize: %s", err)
	}
	return nil
}
