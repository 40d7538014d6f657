package main

import (
	"errors"
	"fmt"
)

type LinkCmd struct {
	Tx      string `help:"Transaction ID to link to."  xor:"target"`
	Address string `help:"Address to link to."         xor:"target"`
}

func (c *LinkCmd) Run(app *App) error {
	state := app.Store.State()
	switch {
	case c.Tx != "":
		fmt.Fprintln(app.Out, state.BlockExplorer.TransactionURL(state.Network, c.Tx))
	case c.Address != "":
		fmt.Fprintln(app.Out, state.BlockExplorer.AddressURL(state.Network, c.Address))
	default:
		return errors.New("either --tx or --address must be provided")
	}
	return nil
}
