package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jobportal-engine/internal/config"
	"jobportal-engine/internal/secrets"
)

func configCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage config.yml in the data directory",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config if none exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.EnsureUserConfig(resolveDataDir(f.dataDir))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(f)
			if err != nil {
				return err
			}
			_, vr := config.NormalizeAndValidate(cfg)

			out := cmd.OutOrStdout()
			for _, w := range vr.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			for _, e := range vr.Errors {
				fmt.Fprintf(out, "error: %s\n", e)
			}
			if !vr.OK() {
				return errors.New("invalid config " + path)
			}
			fmt.Fprintf(out, "%s: ok\n", path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set-license [key]",
		Short: "Store the PDF license key in the OS keychain",
		Long: `Store the unidoc license key in the OS keychain. Without an argument the
key is read from the first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read license key: %w", err)
				}
				key = strings.TrimSpace(line)
			}
			if err := secrets.SetLicenseKey(key); err != nil {
				return fmt.Errorf("failed to store license key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "license key stored in keychain")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete-license",
		Short: "Remove the PDF license key from the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := secrets.DeleteLicenseKey(); err != nil {
				return fmt.Errorf("failed to delete license key: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "license key removed from keychain")
			return nil
		},
	})
	return cmd
}
