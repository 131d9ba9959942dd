package main

import (
	"io"

	"github.com/MKhiriev/go-secret-broker/internal/client"
	"github.com/MKhiriev/go-secret-broker/internal/config"
	"github.com/MKhiriev/go-secret-broker/internal/logger"
	"github.com/spf13/cobra"
)

type cli struct {
	deps dependencies

	cfg     *config.ClientConfig
	flags   config.ClientConfig
	verbose bool
	log     *logger.Logger

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(deps dependencies, in io.Reader, out, errOut io.Writer) *cobra.Command {
	c := &cli{deps: deps, in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "secretctl",
		Short: "Share one-time secrets through the secret broker 🔐",
		Long: `secretctl stores a secret on the broker and reads it back exactly once.

A stored secret is encrypted with a fresh AES-256 key that only the returned
identifier carries. Reading it destroys it; so do too many wrong keys.`,
		Version:           buildInfo(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.flags.Transport.URL, "nats-url", "n", "", "NATS server URL (env NATS_URL)")
	flags.StringVar(&c.flags.Transport.User, "nats-user", "", "NATS user (env NATS_USER)")
	flags.StringVar(&c.flags.Transport.Password, "nats-pass", "", "NATS password (env NATS_PASS)")
	flags.DurationVar(&c.flags.Transport.RequestTimeout, "request-timeout", 0, "broker reply timeout (env NATS_REQUEST_TIMEOUT)")
	flags.StringVar(&c.flags.StatusURL, "status-url", "", "broker status base URL (env SECRETCTL_STATUS_URL)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(
		c.newSendCmd(),
		c.newReceiveCmd(),
		c.newGenPassCmd(),
		c.newDeriveKeyCmd(),
		c.newStatusCmd(),
	)

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	c.log = logger.NewClientLogger("secretctl")
	level := "warn"
	if c.verbose {
		level = "debug"
	}
	if err := logger.SetLevel(level); err != nil {
		return err
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}
	if err = cfg.Override(c.flags); err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *cli) brokerApp() (*client.App, error) {
	broker, err := c.deps.newBroker(c.cfg, c.log)
	if err != nil {
		return nil, err
	}
	return client.NewApp(broker, nil, c.deps.newClipboard(), c.log), nil
}

func (c *cli) localApp() *client.App {
	return client.NewApp(nil, nil, c.deps.newClipboard(), c.log)
}
