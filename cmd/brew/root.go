package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	brew "github.com/goliatone/go-brew"
	"github.com/goliatone/go-brew/internal/config"
	"github.com/goliatone/go-brew/rules"
)

type app struct {
	out      io.Writer
	errOut   io.Writer
	settings config.Settings
	logger   zerolog.Logger

	configPath string
	flagLayer  config.Settings
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:           "brew",
		Short:         "Price and describe coffee orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML settings file")
	flags.StringVar(&a.flagLayer.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.flagLayer.LogFormat, "log-format", "", "log format (console or json)")
	flags.StringVar(&a.flagLayer.Engine, "engine", "", "order rule engine (expr, cel or js)")
	flags.StringArrayVar(&a.flagLayer.Rules, "rule", nil, "order rule that must hold; repeatable")
	flags.Bool("group", true, "group repeated condiments in descriptions")

	cmd.AddCommand(
		newOrderCommand(a),
		newBatchCommand(a),
		newMenuCommand(a),
	)
	return cmd
}

func (a *app) configure(cmd *cobra.Command) error {
	fileLayer := config.Settings{}
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		fileLayer = loaded
	}

	flagLayer := a.flagLayer
	if flag := cmd.Flags().Lookup("group"); flag != nil && flag.Changed {
		group, err := cmd.Flags().GetBool("group")
		if err != nil {
			return err
		}
		flagLayer.Group = &group
	}

	a.settings = config.Merge(flagLayer, fileLayer, config.Defaults())
	if err := a.settings.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(a.errOut, a.settings)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) builder() (*brew.Builder, error) {
	opts := []brew.Option{
		brew.WithGrouping(a.settings.GroupEnabled()),
		brew.WithBuildLogger(buildLogger(a.logger)),
		brew.WithActivityHooks(activityHooks(a.logger)),
		brew.WithActivityChannel(a.settings.Channel),
	}
	if len(a.settings.Rules) > 0 {
		evaluator, err := rules.NewEvaluator(a.settings.Engine, rules.NewMemoryCache(), nil)
		if err != nil {
			return nil, err
		}
		opts = append(opts, brew.WithEvaluator(evaluator), brew.WithRules(a.settings.Rules...))
	}
	return brew.NewBuilder(opts...), nil
}
