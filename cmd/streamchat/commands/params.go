package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"streamchat/internal/crypto"
)

type protocolParams struct {
	DH struct {
		Prime     string `yaml:"prime"`
		Generator uint64 `yaml:"generator"`
	} `yaml:"dh"`
	Keystream struct {
		Multiplier uint32 `yaml:"multiplier"`
		Increment  uint32 `yaml:"increment"`
		SendMask   string `yaml:"responder_send_mask"`
		RecvMask   string `yaml:"responder_recv_mask"`
	} `yaml:"keystream"`
	MaxFrameSize uint32 `yaml:"max_frame_size"`
}

// paramsCmd prints the public constants both peers must share.
func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the Diffie-Hellman and keystream parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out protocolParams
			p := appCtx.Config.Params
			out.DH.Prime = fmt.Sprintf("0x%016X", p.P)
			out.DH.Generator = p.G
			out.Keystream.Multiplier = crypto.LCGMultiplier
			out.Keystream.Increment = crypto.LCGIncrement
			out.Keystream.SendMask = fmt.Sprintf("0x%016X", crypto.SeedMaskA)
			out.Keystream.RecvMask = fmt.Sprintf("0x%016X", crypto.SeedMaskB)
			out.MaxFrameSize = appCtx.Config.MaxFrameSize

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(out); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
