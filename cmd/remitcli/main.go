package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/remit"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// except the program name and this command name. It is the responsibility of
// the command function to parse the arguments using the flag package. Logs
// and error messages go to os.Stderr.
//
// All commands operate on the state directory that is selected with the
// -home flag or the REMIT_HOME environment variable. A full remittance can be
// executed with:
//
//   $ remitcli init -genesis genesis.json
//   $ remitcli hash -recipient <addr> -secret-a apple -secret-b pear
//   $ remitcli deposit -as <owner> -key <key> -recipient <addr> -amount 5
//   $ remitcli withdraw -as <addr> -secret-a apple -secret-b pear
//
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"balance":  cmdBalance,
	"deposit":  cmdDeposit,
	"events":   cmdEvents,
	"hash":     cmdHash,
	"init":     cmdInit,
	"lookup":   cmdLookup,
	"owner":    cmdOwner,
	"version":  cmdVersion,
	"withdraw": cmdWithdraw,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for a remittance contract.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	// Skip two first arguments. Second argument is the command name that
	// we just consumed.
	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	fmt.Fprintln(out, remit.Version())
	return nil
}
