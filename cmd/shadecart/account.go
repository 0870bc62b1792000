package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shadecart/shadecart/ordering"
)

func newSignupCmd(opts *options) *cobra.Command {
	var req ordering.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.client.Signup(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account created. Log in with: shadecart login", req.Email)
			return nil
		}),
	}

	flags := cmd.Flags()
	flags.StringVar(&req.FirstName, "first-name", "", "first name")
	flags.StringVar(&req.LastName, "last-name", "", "last name")
	flags.StringVar(&req.Username, "username", "", "username")
	flags.StringVar(&req.Phone, "phone", "", "phone number")
	flags.StringVar(&req.Email, "email", "", "e-mail address")
	flags.StringVar(&req.Password, "password", "", "password, at least 8 characters")
	for _, name := range []string{"first-name", "last-name", "username", "phone", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newLoginCmd(opts *options) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login IDENTIFIER",
		Short: "Log in with e-mail, phone or username",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return errors.New("no password given")
				}
				password = strings.TrimRight(line, "\r\n")
			}

			result, err := a.client.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			if err := a.session.Save(cmd.Context(), result.Token, result.Authority); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		}),
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the session and empty the cart",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			if err := a.session.Logout(cmd.Context(), a.cart); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		}),
	}
}

func newCatalogCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List categories and their shades",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, a *app) error {
			categories, err := a.client.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, category := range categories {
				fmt.Fprintf(out, "%s - %s\n", category.Name, category.Description)
				for _, color := range category.Colors {
					fmt.Fprintf(out, "  %-10s %-10s %s\n", color.ID, color.Hex, color.Name)
				}
			}
			return nil
		}),
	}
}
