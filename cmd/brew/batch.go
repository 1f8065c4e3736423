package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	brew "github.com/goliatone/go-brew"
	"github.com/goliatone/go-brew/pkg/state"
)

type batchFile struct {
	Orders []brew.Request `yaml:"orders"`
}

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FILE",
		Short: "Build every order listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var file batchFile
			if err := yaml.Unmarshal(payload, &file); err != nil {
				return fmt.Errorf("batch: decode %s: %w", args[0], err)
			}
			builder, err := a.builder()
			if err != nil {
				return err
			}

			store := state.NewMemoryStore()
			failed := 0
			for i, req := range file.Orders {
				receipt, err := builder.Receipt(cmd.Context(), req)
				if err != nil {
					failed++
					fmt.Fprintf(a.out, "%d: error: %v\n", i+1, err)
					continue
				}
				if _, err := store.Save(cmd.Context(), receipt, state.Meta{}); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%d: %s\n", i+1, receipt.String())
			}

			totals, err := state.Tally(cmd.Context(), store)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "total: %d orders %s\n", totals.Orders, brew.FormatMoney(totals.Cost))
			if failed > 0 {
				return fmt.Errorf("batch: %d of %d orders failed", failed, len(file.Orders))
			}
			return nil
		},
	}
}
