package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-secret-broker/internal/client"
	"github.com/MKhiriev/go-secret-broker/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	noticeColor  = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen)
)

func (c *cli) newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [message|-]",
		Short: "Store a secret and print its identifier",
		Long: `Store a secret and print its identifier as JSON.

The message is taken from the arguments. With no arguments or "-" it is read
from standard input and a single trailing newline is dropped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plaintext, err := c.readMessage(args)
			if err != nil {
				return err
			}

			app, err := c.brokerApp()
			if err != nil {
				return err
			}
			defer app.Close()

			id, err := app.Send(cmd.Context(), plaintext)
			if err != nil {
				return err
			}

			return c.printJSON(id)
		},
	}
}

func (c *cli) newReceiveCmd() *cobra.Command {
	var (
		id              models.SecretMessageIdentifier
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "receive [-]",
		Short: "Read a secret once and print it",
		Long: `Read a secret once and print it.

The identifier comes from --id and --key, or with "-" from the JSON printed by
send on standard input. A successful read destroys the secret.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if args[0] != "-" {
					return fmt.Errorf("unexpected argument %q", args[0])
				}
				if err := json.NewDecoder(c.in).Decode(&id); err != nil {
					return fmt.Errorf("decode identifier from stdin: %w", err)
				}
			}
			if id.MessageID == "" || id.AESKey == "" {
				return fmt.Errorf("both --id and --key are required")
			}

			app, err := c.brokerApp()
			if err != nil {
				return err
			}
			defer app.Close()

			plaintext, err := app.Receive(cmd.Context(), id, copyToClipboard)
			if plaintext == models.MaxAttemptsReachedMessage {
				_, _ = noticeColor.Fprintln(c.out, plaintext)
				return nil
			}
			if plaintext != "" {
				_, _ = fmt.Fprintln(c.out, plaintext)
			}
			if err != nil {
				return err
			}

			if copyToClipboard {
				_, _ = successColor.Fprintln(c.errOut, "copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id.MessageID, "id", "", "message id")
	cmd.Flags().StringVar(&id.AESKey, "key", "", "base64 AES key")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the secret to the clipboard")

	return cmd
}

func (c *cli) newGenPassCmd() *cobra.Command {
	var (
		length          int
		copyToClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "genpass",
		Short: "Generate a random password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("length") {
				length = c.cfg.PasswordLength
			}

			password, err := c.localApp().GeneratePassword(length, copyToClipboard)
			if password != "" {
				_, _ = fmt.Fprintln(c.out, password)
			}
			if err != nil {
				return err
			}

			if copyToClipboard {
				_, _ = successColor.Fprintln(c.errOut, "copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 0, "password length (env APP_PASSWORD_LENGTH)")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "also copy the password to the clipboard")

	return cmd
}

func (c *cli) newDeriveKeyCmd() *cobra.Command {
	var passphrase, salt string

	cmd := &cobra.Command{
		Use:   "derive-key",
		Short: "Derive an AES-256 key from a passphrase with PBKDF2",
		Long: `Derive an AES-256 key from a passphrase with PBKDF2-HMAC-SHA256.

Without --salt a fresh random salt is generated. Keep the printed salt to
derive the same key again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if passphrase == "" {
				return fmt.Errorf("--passphrase is required")
			}

			derived, err := c.localApp().DeriveKey(passphrase, salt)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(c.out, "key:  %s\nsalt: %s\n", derived.Key, derived.Salt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase to derive from")
	cmd.Flags().StringVarP(&salt, "salt", "s", "", "base64 salt (random when empty)")

	return cmd
}

func (c *cli) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Query the broker liveness endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := client.NewApp(nil, c.deps.newStatus(c.cfg), nil, c.log)

			status, err := app.Status(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = successColor.Fprintln(c.out, status)
			return nil
		},
	}
}

// readMessage joins args, or reads standard input for none or "-".
func (c *cli) readMessage(args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(c.in)
	if err != nil {
		return "", fmt.Errorf("read message from stdin: %w", err)
	}

	message := string(data)
	if strings.HasSuffix(message, "\r\n") {
		message = strings.TrimSuffix(message, "\r\n")
	} else {
		message = strings.TrimSuffix(message, "\n")
	}
	if message == "" {
		return "", client.ErrNoMessage
	}
	return message, nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
