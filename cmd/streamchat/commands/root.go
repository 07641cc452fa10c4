package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"streamchat/internal/app"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
	appCtx   *app.Wire
)

// Execute runs the root command against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "streamchat",
		Short:        "Stream cipher chat with Diffie-Hellman key generation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.NewViper(cfgFile)
			if err != nil {
				return err
			}
			if err := bindFlags(cmd, v); err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error, off")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled console output")
	root.PersistentFlags().String("listen-host", "", "interface the server binds (default 0.0.0.0)")
	root.PersistentFlags().Duration("dial-timeout", 0, "client connect timeout (0 = none)")

	root.AddCommand(serverCmd(), clientCmd(), paramsCmd())
	return root
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	if err := v.BindPFlag(app.KeyListenHost, flags.Lookup("listen-host")); err != nil {
		return err
	}
	if err := v.BindPFlag(app.KeyDialTimeout, flags.Lookup("dial-timeout")); err != nil {
		return err
	}
	if flags.Changed("log-level") {
		v.Set(app.KeyLogLevel, logLevel)
	}
	if noColor {
		v.Set(app.KeyColor, false)
	}
	return nil
}
