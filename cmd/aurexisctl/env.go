package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func newEnvCmd() *cobra.Command {
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the local environment file",
	}

	var (
		example     string
		force       bool
		interactive bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the environment file from the example template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(envFile); err == nil && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists, nothing to do (use --force to overwrite)\n", envFile)
				return nil
			}

			var prompt func(map[string]string) error
			if interactive {
				prompt = promptEnv
			}

			values, err := writeEnvFile(example, envFile, prompt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s from %s\n", envFile, example)
			if values["STORAGE_BUCKET"] == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "STORAGE_BUCKET is empty: uploads stay disabled until it is set")
			}
			return nil
		},
	}
	initCmd.Flags().StringVar(&example, "example", ".env.example", "template to copy")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing environment file")
	initCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for bucket and admin account")

	envCmd.AddCommand(initCmd)
	return envCmd
}

// writeEnvFile copies example to target byte for byte. With a prompt the
// values are edited first and the file is rewritten by godotenv, which
// drops the template's comments.
func writeEnvFile(example, target string, prompt func(map[string]string) error) (map[string]string, error) {
	raw, err := os.ReadFile(example)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", example, err)
	}

	values, err := godotenv.UnmarshalBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", example, err)
	}

	if prompt == nil {
		if err := os.WriteFile(target, raw, 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", target, err)
		}
		return values, nil
	}

	if err := prompt(values); err != nil {
		return nil, err
	}
	if err := godotenv.Write(values, target); err != nil {
		return nil, fmt.Errorf("write %s: %w", target, err)
	}
	return values, nil
}

// promptEnv asks for the values a fresh checkout usually needs to change
func promptEnv(values map[string]string) error {
	var (
		bucket   = values["STORAGE_BUCKET"]
		email    = values["ADMIN_EMAIL"]
		password string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Storage bucket").
				Description("Leave empty to keep uploads disabled").
				Value(&bucket),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Admin email").
				Value(&email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return errors.New("enter a valid email")
					}
					return nil
				}),
			huh.NewInput().
				Title("Admin password").
				Description("Stored as a bcrypt hash").
				EchoMode(huh.EchoModePassword).
				Value(&password),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	values["STORAGE_BUCKET"] = strings.TrimSpace(bucket)
	values["ADMIN_EMAIL"] = strings.ToLower(strings.TrimSpace(email))
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		values["ADMIN_PASSWORD_HASH"] = string(hash)
	}
	return nil
}
