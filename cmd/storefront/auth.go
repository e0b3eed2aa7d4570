package main

import (
	"fmt"

	"github.com/spf13/cobra"

	sessionapp "github.com/recirculate/storefront/internal/session/app"
)

func newLoginCmd(get func() *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, err := a.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Printf("logged in as %s (client %d)\n", id.Email, id.ClientID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd(get func() *app) *cobra.Command {
	var in sessionapp.RegisterInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a client account (log in afterwards)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			rec, err := a.session.Register(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("account created for %s; run 'storefront login' to sign in\n", rec.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "first name")
	cmd.Flags().StringVar(&in.Lastname, "lastname", "", "last name")
	cmd.Flags().StringVar(&in.Email, "email", "", "account email")
	cmd.Flags().StringVar(&in.Password, "password", "", "account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			get().session.Logout()
			fmt.Println("logged out")
			return nil
		},
	}
}

func newWhoamiCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in client",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := get().session.Current()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s %s <%s> (client %d)\n", id.Name, id.Lastname, id.Email, id.ClientID)
			return nil
		},
	}
}
