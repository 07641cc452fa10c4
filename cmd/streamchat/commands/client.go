package commands

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
)

// clientCmd connects to <address:port> and chats as the initiator.
func clientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client <address:port>",
		Short: "Connect to a server and start a chat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := args[0]
			if _, _, err := net.SplitHostPort(addr); err != nil {
				return fmt.Errorf("invalid address %q: %w", addr, err)
			}

			_, err := appCtx.Sessions.Connect(cmd.Context(), addr)
			if err != nil {
				return fmt.Errorf("chat with %s: %w", addr, err)
			}
			return nil
		},
	}
}
