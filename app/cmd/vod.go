package cmd

import (
	"fmt"
	"ttvcli/app/service/vod"
	"ttvcli/pkg/hls"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func validateVodID(vodID string) error {
	if err := validate.Var(vodID, "required,number"); err != nil {
		return fmt.Errorf("invalid VOD id %q: %w", vodID, err)
	}
	return nil
}

func (a *app) dlCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dl VOD_ID",
		Short: "Logs the direct link to a VOD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVodID(args[0]); err != nil {
				return err
			}

			link, err := do.MustInvoke[*vod.Service](a.di).DirectLink(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}
}

func (a *app) m3u8GenCommand() *cobra.Command {
	var start, end float64

	cmd := &cobra.Command{
		Use:   "m3u8-gen VOD_ID",
		Short: "Generate the M3U8 of an entire Twitch VOD or a part of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVodID(args[0]); err != nil {
				return err
			}

			window := hls.DefaultWindow()
			if cmd.Flags().Changed("start") {
				window.Start = start
			}
			if cmd.Flags().Changed("end") {
				window.End = end
			}

			if err := validate.Var(window.Start, "gte=0"); err != nil {
				return fmt.Errorf("start must not be negative: %w", err)
			}
			if err := validate.Var(window.End, "gte=0"); err != nil {
				return fmt.Errorf("end must not be negative: %w", err)
			}

			playlist, err := do.MustInvoke[*vod.Service](a.di).Playlist(cmd.Context(), args[0], window)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), playlist)
			return err
		},
	}

	cmd.Flags().Float64VarP(&start, "start", "s", 0, "Start duration in seconds")
	cmd.Flags().Float64VarP(&end, "end", "e", 0, "End duration in seconds")

	return cmd
}

func (a *app) vodsCommand() *cobra.Command {
	var pages pageFlags

	cmd := &cobra.Command{
		Use:   "vods USERNAME",
		Short: "Shows all the vods of an user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := pages.options()
			if err != nil {
				return err
			}

			for vods := range do.MustInvoke[*vod.Service](a.di).Vods(cmd.Context(), args[0], opts) {
				if err := writeJSON(cmd.OutOrStdout(), vods); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pages.register(cmd)

	return cmd
}

func (a *app) commentsCommand() *cobra.Command {
	var pages pageFlags

	cmd := &cobra.Command{
		Use:   "comments VOD_ID",
		Short: "Shows all the comments of a VOD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateVodID(args[0]); err != nil {
				return err
			}

			opts, err := pages.options()
			if err != nil {
				return err
			}

			for comments := range do.MustInvoke[*vod.Service](a.di).Comments(cmd.Context(), args[0], opts) {
				if err := writeJSON(cmd.OutOrStdout(), comments); err != nil {
					return err
				}
			}
			return nil
		},
	}
	pages.register(cmd)

	return cmd
}
