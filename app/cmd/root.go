package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"ttvcli/pkg/config"
	"ttvcli/pkg/paginate"
	"ttvcli/pkg/util"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/spf13/cobra"
)

// Bootstrap builds the injector for a config file path.
type Bootstrap func(cfgPath string) (*do.Injector, error)

var validate = validator.New(validator.WithRequiredStructEnabled())

type app struct {
	bootstrap Bootstrap
	cfgPath   string
	di        *do.Injector
}

func NewRoot(bootstrap Bootstrap) *cobra.Command {
	a := &app{bootstrap: bootstrap}

	root := &cobra.Command{
		Use:           "ttvcli",
		Short:         "A CLI for twitch that does things that can't be done with the web interface",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			di, err := a.bootstrap(a.cfgPath)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			a.di = di

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, util.RequestIDContextKey, uuid.NewString())
			ctx = context.WithValue(ctx, util.CommandContextKey, cmd.Name())
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.di == nil {
				return nil
			}
			return a.di.Shutdown()
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath, "path to the YAML config file")

	root.AddCommand(
		a.infosCommand(),
		a.areLiveCommand(),
		a.chattersCommand(),
		a.dlCommand(),
		a.m3u8GenCommand(),
		a.vodsCommand(),
		a.commentsCommand(),
		a.clipsCommand(),
		a.clipURLCommand(),
	)

	return root
}

type pageFlags struct {
	iterations int
	cursor     string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.iterations, "iterations", "i", 0, "Number of iterations to do")
	cmd.Flags().StringVarP(&f.cursor, "cursor", "c", "", "Cursor, used to start fetching from a certain point on")
}

func (f *pageFlags) options() (paginate.Options, error) {
	if err := validate.Var(f.iterations, "gte=0"); err != nil {
		return paginate.Options{}, fmt.Errorf("invalid iterations %d: %w", f.iterations, err)
	}
	return paginate.Options{Cursor: f.cursor, MaxPages: f.iterations}, nil
}

// writeJSON prints v as a single JSON line.
func writeJSON(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
