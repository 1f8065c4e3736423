package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	brew "github.com/goliatone/go-brew"
)

func newMenuCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print drinks and condiment surcharges",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DRINK\tKEY\tPRICE")
			for _, kind := range brew.DrinkKinds() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", kind.Name(), kind.Key(), brew.FormatMoney(kind.Price()))
			}
			fmt.Fprintln(w)
			fmt.Fprint(w, "CONDIMENT\tKEY")
			for _, size := range brew.Sizes() {
				fmt.Fprintf(w, "\t%s", size.Menu())
			}
			fmt.Fprintln(w)
			for _, kind := range brew.CondimentKinds() {
				fmt.Fprintf(w, "%s\t%s", kind.Label(), kind.Key())
				for _, size := range brew.Sizes() {
					fmt.Fprintf(w, "\t%s", brew.FormatMoney(kind.Surcharge(size)))
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
}
