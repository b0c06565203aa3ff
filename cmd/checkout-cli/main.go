package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/companieshouse/checkout.client.ch.gov.uk/config"
	"github.com/companieshouse/checkout.client.ch.gov.uk/httpclient"
	"github.com/companieshouse/checkout.client.ch.gov.uk/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// app is shared by every subcommand once the root command has run.
type app struct {
	cfg *config.Config
	svc *service.CheckoutService
}

func main() {
	log.Namespace = "checkout.client.ch.gov.uk"

	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	var envFile string

	rootCmd := &cobra.Command{
		Use:           "checkout-cli",
		Short:         "Call the Checkout API from the command line",
		Version:       httpclient.LibraryVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.svc != nil {
				return nil
			}
			return a.load(envFile, cmd.Flag("env-file").Changed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file of CHECKOUT_* variables loaded before the environment is read")

	rootCmd.AddCommand(paymentsCmd(a))
	rootCmd.AddCommand(paymentMethodsCmd(a))
	rootCmd.AddCommand(detailsCmd(a))
	rootCmd.AddCommand(sessionsCmd(a))
	rootCmd.AddCommand(linksCmd(a))
	rootCmd.AddCommand(modificationCmds(a)...)

	return rootCmd
}

// load reads configuration from envFile and the environment. A missing
// default env file is not an error.
func (a *app) load(envFile string, explicit bool) error {
	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("error loading env file %s: [%w]", envFile, err)
		}
	}

	// cobra owns the command line, so gofigure only sees the environment.
	args := os.Args
	os.Args = args[:1]
	cfg, err := config.Get()
	os.Args = args
	if err != nil {
		return fmt.Errorf("error reading config: [%w]", err)
	}

	a.cfg = cfg
	a.svc = service.NewCheckoutService(httpclient.NewClient(), cfg)
	return nil
}
