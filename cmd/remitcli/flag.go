package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/x/remittance"
)

// flAddress returns a value that is being initialized with given default value
// and optionally overwritten by a command line argument if provided. This
// function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *remit.Address {
	var a remit.Address
	if defaultVal != "" {
		var err error
		a, err = remit.ParseAddress(defaultVal)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot parse %q remit.Address flag value. %s", name, err)
			os.Exit(2)
		}
	}
	fl.Var(&a, name, usage)
	return &a
}

// flKey registers an escrow key flag. An empty key is returned if the flag
// was not provided.
func flKey(fl *flag.FlagSet, name, usage string) *remittance.EscrowKey {
	var k remittance.EscrowKey
	fl.Var(&k, name, usage)
	return &k
}
