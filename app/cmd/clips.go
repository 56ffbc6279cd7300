package cmd

import (
	"fmt"
	"time"
	"ttvcli/app/service/clips"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func (a *app) clipsCommand() *cobra.Command {
	var pages pageFlags

	cmd := &cobra.Command{
		Use:   "clips USERNAME STARTED_AT ENDED_AT",
		Short: "Shows all the clips of an user between a range of time",
		Long:  "Shows all the clips of an user between a range of time.\nSTARTED_AT and ENDED_AT are RFC3339 timestamps (e.g. 2020-03-26T00:00:00Z).",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			startedAt, err := time.Parse(time.RFC3339, args[1])
			if err != nil {
				return fmt.Errorf("invalid STARTED_AT: %w", err)
			}
			endedAt, err := time.Parse(time.RFC3339, args[2])
			if err != nil {
				return fmt.Errorf("invalid ENDED_AT: %w", err)
			}

			opts, err := pages.options()
			if err != nil {
				return err
			}

			seq, err := do.MustInvoke[*clips.Service](a.di).Clips(cmd.Context(), args[0], startedAt, endedAt, opts)
			if err != nil {
				return err
			}

			for page := range seq {
				if err := writeJSON(cmd.OutOrStdout(), page); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pages.register(cmd)

	return cmd
}

func (a *app) clipURLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clip-url SLUG",
		Short: "Logs the direct link to a clip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := do.MustInvoke[*clips.Service](a.di).ClipURL(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}
}
