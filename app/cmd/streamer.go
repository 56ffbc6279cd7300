package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"ttvcli/app/client/twitch"
	"ttvcli/app/service/streamer"

	"github.com/samber/do"
	"github.com/spf13/cobra"
)

func (a *app) infosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "infos USERNAME",
		Short: "Shows infos about an user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := do.MustInvoke[*streamer.Service](a.di).Infos(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), user)
		},
	}
}

// Failed checks are logged and left out of the output.
func (a *app) areLiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "are-live USERNAME...",
		Short: "Given a list of streamers, check if they are live",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, status := range do.MustInvoke[*streamer.Service](a.di).AreLive(cmd.Context(), args) {
				if status.Err != nil {
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", status.Login, status.Live); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) chattersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chatters STREAMER_USERNAME [USERNAME...]",
		Short: "List all the online chatters given a streamer's username",
		Long: "List all the online chatters given a streamer's username.\n" +
			"If USERNAME values are given, prints whether each of them is watching STREAMER_USERNAME.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatters, err := do.MustInvoke[*streamer.Service](a.di).Chatters(cmd.Context(), args[0])
			if err != nil {
				var transportErr *twitch.TransportError
				if errors.As(err, &transportErr) && transportErr.StatusCode == http.StatusNotFound {
					return fmt.Errorf("there is not a Twitch user named %q: %w", args[0], err)
				}
				return err
			}

			usernames := args[1:]
			if len(usernames) == 0 {
				return writeJSON(cmd.OutOrStdout(), chatters)
			}

			for i, online := range streamer.AreOnline(chatters, usernames) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", usernames[i], online); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
