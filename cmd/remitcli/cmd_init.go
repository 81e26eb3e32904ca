package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/x/cash"
	"github.com/iov-one/remit/x/remittance"
)

func cmdInit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Create a new state from a genesis file. The genesis declares the funded
accounts and the remittance contract:

  {
    "app_state": {
      "cash": [{"address": "<addr>", "coins": 5}],
      "conf": {"remittance": {"owner": "<addr>", "paused": false, "nonce": 0}}
    }
  }
		`)
		fl.PrintDefaults()
	}
	var (
		state     = flState(fl)
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	gen, err := remit.LoadGenesis(*genesisFl)
	if err != nil {
		return fmt.Errorf("cannot load genesis: %s", err)
	}

	db, err := openState(*state.home)
	if err != nil {
		return err
	}
	defer db.Close()

	if v, err := db.LatestVersion(); err != nil {
		return fmt.Errorf("cannot read state version: %s", err)
	} else if v.Version != 0 {
		return fmt.Errorf("state in %s already initialized", *state.home)
	}

	cache := db.CacheWrap()
	inits := remit.ChainInitializers(cash.Initializer{}, remittance.Initializer{})
	if err := inits.FromGenesis(gen.AppState, cache); err != nil {
		cache.Discard()
		return fmt.Errorf("cannot initialize from genesis: %s", err)
	}
	if err := cache.Write(); err != nil {
		return fmt.Errorf("cannot write genesis state: %s", err)
	}
	id, err := db.Commit()
	if err != nil {
		return fmt.Errorf("cannot commit state: %s", err)
	}

	c, err := remittance.Load(db.Adapter())
	if err != nil {
		return fmt.Errorf("cannot load contract: %s", err)
	}
	logger, err := newLogger(*state.logLevel)
	if err != nil {
		return err
	}
	logger.Info("state initialized", "home", *state.home, "version", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return writeJSON(output, ownerView{
		Owner:   c.Owner(),
		Address: c.Address(),
		Paused:  c.IsPaused(),
	})
}
