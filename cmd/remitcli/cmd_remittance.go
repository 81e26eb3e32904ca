package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/x/remittance"
)

func cmdHash(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Compute the key an escrow for the recipient must be deposited under so that
it can be withdrawn with both secrets. Share each secret with a different
party, the recipient needs both of them.
		`)
		fl.PrintDefaults()
	}
	var (
		state       = flState(fl)
		recipientFl = flAddress(fl, "recipient", "", "Address of the recipient.")
		secretAFl   = fl.String("secret-a", "", "The first secret.")
		secretBFl   = fl.String("secret-b", "", "The second secret.")
	)
	fl.Parse(args)

	if err := recipientFl.Validate(); err != nil {
		return fmt.Errorf("invalid recipient: %s", err)
	}
	return withContract(*state.home, false, func(c *remittance.Contract) error {
		key := c.GenerateHash(*recipientFl, []byte(*secretAFl), []byte(*secretBFl))
		_, err := fmt.Fprintln(output, key)
		return err
	})
}

func cmdDeposit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Lock value for a recipient under a key. Only the contract owner can deposit,
the value is taken from the owner account. Use the hash command to compute
the key.
		`)
		fl.PrintDefaults()
	}
	var (
		state       = flState(fl)
		asFl        = flAddress(fl, "as", "", "Address of the caller.")
		keyFl       = flKey(fl, "key", "Hex encoded escrow key.")
		recipientFl = flAddress(fl, "recipient", "", "Address of the recipient.")
		amountFl    = fl.Uint64("amount", 0, "Amount of value to lock.")
	)
	fl.Parse(args)

	ctx, err := state.newContext(*asFl)
	if err != nil {
		return err
	}
	return withContract(*state.home, true, func(c *remittance.Contract) error {
		res, err := c.Deposit(ctx, &remittance.DepositMsg{
			Key:       *keyFl,
			Recipient: *recipientFl,
			Amount:    *amountFl,
		})
		if err != nil {
			return opError("deposit", err)
		}
		return writeEvents(output, res.Events)
	})
}

func cmdWithdraw(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Withdraw the whole escrow locked for the caller with both secrets.
		`)
		fl.PrintDefaults()
	}
	var (
		state     = flState(fl)
		asFl      = flAddress(fl, "as", "", "Address of the caller and recipient of the escrow.")
		secretAFl = fl.String("secret-a", "", "The first secret.")
		secretBFl = fl.String("secret-b", "", "The second secret.")
	)
	fl.Parse(args)

	ctx, err := state.newContext(*asFl)
	if err != nil {
		return err
	}
	return withContract(*state.home, true, func(c *remittance.Contract) error {
		res, err := c.Withdraw(ctx, &remittance.WithdrawMsg{
			SecretA: []byte(*secretAFl),
			SecretB: []byte(*secretBFl),
		})
		if err != nil {
			return opError("withdraw", err)
		}
		return writeEvents(output, res.Events)
	})
}

func cmdLookup(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the escrow stored under a key. An unused key prints an empty escrow.
		`)
		fl.PrintDefaults()
	}
	var (
		state = flState(fl)
		keyFl = flKey(fl, "key", "Hex encoded escrow key.")
	)
	fl.Parse(args)

	return withContract(*state.home, false, func(c *remittance.Contract) error {
		e, err := c.Lookup(*keyFl)
		if err != nil {
			return fmt.Errorf("cannot lookup escrow: %s", err)
		}
		return writeJSON(output, e)
	})
}

// ownerView is the JSON representation of the contract configuration.
type ownerView struct {
	Owner   remit.Address `json:"owner"`
	Address remit.Address `json:"address"`
	Paused  bool          `json:"paused"`
}

func cmdOwner(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the owner of the contract, the address of the contract account and the
paused flag.
		`)
		fl.PrintDefaults()
	}
	state := flState(fl)
	fl.Parse(args)

	return withContract(*state.home, false, func(c *remittance.Contract) error {
		return writeJSON(output, ownerView{
			Owner:   c.Owner(),
			Address: c.Address(),
			Paused:  c.IsPaused(),
		})
	})
}

func cmdBalance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print the value held by an account. Without the address flag, print the value
held by the contract.
		`)
		fl.PrintDefaults()
	}
	var (
		state  = flState(fl)
		addrFl = flAddress(fl, "addr", "", "Address of the account.")
	)
	fl.Parse(args)

	return withContract(*state.home, false, func(c *remittance.Contract) error {
		var (
			balance uint64
			err     error
		)
		if len(*addrFl) == 0 {
			balance, err = c.Balance()
		} else {
			balance, err = c.AccountBalance(*addrFl)
		}
		if err != nil {
			return fmt.Errorf("cannot get balance: %s", err)
		}
		_, err = fmt.Fprintln(output, balance)
		return err
	})
}

func cmdEvents(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), `
Print all events emitted by the contract, oldest first, one JSON document per
line.
		`)
		fl.PrintDefaults()
	}
	state := flState(fl)
	fl.Parse(args)

	return withContract(*state.home, false, func(c *remittance.Contract) error {
		events, err := c.Events()
		if err != nil {
			return fmt.Errorf("cannot list events: %s", err)
		}
		return writeEvents(output, events)
	})
}
