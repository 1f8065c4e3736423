package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	brew "github.com/goliatone/go-brew"
)

func newOrderCommand(a *app) *cobra.Command {
	var req brew.Request

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Build a single beverage and print its receipt",
		Example: "  brew order --base darkroast --size venti -c mocha -c mocha -c whip\n" +
			"  brew order --base espresso --rule 'cents < 300'",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			builder, err := a.builder()
			if err != nil {
				return err
			}
			receipt, err := builder.Receipt(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, receipt.String())
			return err
		},
	}

	bindRequestFlags(cmd.Flags(), &req)
	_ = cmd.MarkFlagRequired("base")
	return cmd
}

func bindRequestFlags(flags *pflag.FlagSet, req *brew.Request) {
	flags.StringVarP(&req.Base, "base", "b", "", "base drink (espresso, darkroast, houseblend, decaf)")
	flags.StringVarP(&req.Size, "size", "s", "tall", "size (tall, grande, venti)")
	flags.StringSliceVarP(&req.Condiments, "condiment", "c", nil, "condiment to add, innermost first; repeatable")
}
