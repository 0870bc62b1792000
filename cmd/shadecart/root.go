package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type runFunc func(cmd *cobra.Command, args []string, a *app) error

// withApp opens the device storage for the duration of one command.
func withApp(opts *options, run runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		a, err := openApp(cmd.Context(), *opts)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := a.Close(); err == nil {
				err = closeErr
			}
		}()
		return run(cmd, args, a)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	// .env is optional; it only seeds the flag defaults below
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "shadecart",
		Short:         "Pick paint shades, keep them in a cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.backendURL, "backend", defaultBackend(), "ShadeCart API base URL (SHADECART_BACKEND_URL)")
	flags.StringVar(&opts.dataPath, "data", defaultDataPath(), "device storage file (SHADECART_DATA)")
	flags.DurationVar(&opts.timeout, "timeout", defaultTimeout, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(
		newSignupCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newCatalogCmd(opts),
		newCartCmd(opts),
		newOrderCmd(opts),
	)
	return root
}
