package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoRandomString/GoRandomString/internal/secret"
)

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(newOTPCmd())
}

func newOTPCmd() *cobra.Command {
	var opts secret.TOTPOptions

	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Print a new TOTP enrollment key with a random secret",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initCLILogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := secret.NewTOTPKey(opts)
			if err != nil {
				return err //nolint:wrapcheck
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "secret: %s\n", key.Secret())
			_, _ = fmt.Fprintf(out, "url: %s\n", key.URL())

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Issuer, "issuer", "", "Issuer shown by the authenticator app")
	cmd.Flags().StringVar(&opts.AccountName, "account", "", "Account name shown by the authenticator app")
	cmd.Flags().IntVar(&opts.SecretLength, "size", secret.DefaultTOTPSecretLength, "Number of random characters of the raw secret")

	_ = cmd.MarkFlagRequired("issuer")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
