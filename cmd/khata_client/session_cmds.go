package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	"github.com/SscSPs/digital_khata_client/internal/dto"
	"github.com/spf13/cobra"
)

func loginCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the backend and keep the session on this machine",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				p, err := readLine(cmd.InOrStdin(), cmd.OutOrStdout(), "Password: ")
				if err != nil {
					return err
				}
				password = p
			}

			a, err := newApp(cmd.Context(), opts, bootOptions{echo: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer a.close()

			user, err := a.services.Session.Login(cmd.Context(), dto.LoginRequest{Email: email, Password: password})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when empty)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the stored user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, bootOptions{echo: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer a.close()
			return a.services.Session.Logout(cmd.Context())
		},
	}
}

func whoamiCmd(opts *rootOptions) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, bootOptions{echo: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer a.close()

			if refresh {
				if _, err := a.services.Session.Refresh(cmd.Context()); err != nil {
					return err
				}
			}

			s := a.store.State()
			out := cmd.OutOrStdout()
			if !s.Session.IsAuthenticated || s.Session.User == nil {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			u := s.Session.User
			fmt.Fprintf(out, "%s <%s>\n", u.Name, u.Email)
			if u.BusinessName != "" {
				fmt.Fprintf(out, "Business: %s\n", u.BusinessName)
			}
			fmt.Fprintf(out, "Theme: %s\n", s.Theme)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "Reload the profile from the backend first")
	return cmd
}

func themeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Show or change the stored theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts, bootOptions{})
			if err != nil {
				return err
			}
			defer a.close()

			if len(args) == 1 {
				if args[0] == "toggle" {
					a.store.ToggleTheme()
				} else {
					theme, err := domain.ParseTheme(args[0])
					if err != nil {
						return err
					}
					a.store.SetTheme(theme)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.store.State().Theme)
			return nil
		},
	}
}

func readLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
