package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"streamchat/internal/transport"
)

// serverCmd listens on <port>, accepts a single peer and chats as the responder.
func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server <port>",
		Short: "Wait for a peer on <port> and start a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := parsePort(args[0])
			if err != nil {
				return err
			}

			ln, err := transport.Listen(cmd.Context(), appCtx.Config.ListenHost, port)
			if err != nil {
				return err
			}
			defer ln.Close()

			_, err = appCtx.Sessions.Serve(cmd.Context(), ln)
			return err
		},
	}
}

func parsePort(s string) (uint16, error) {
	port, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be a number between 0 and 65535", s)
	}
	return uint16(port), nil
}
