package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfileCmd(get func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your client profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the full profile record",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, ok := a.session.Current()
			if !ok {
				return errNotLoggedIn
			}

			c, err := a.clients.Get(cmd.Context(), id.ClientID)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s <%s>\n", c.Name, c.Lastname, c.Email)
			fmt.Printf("telephone: %s\n", c.Telephone)
			fmt.Printf("client id: %d\n", c.IDKey)
			return nil
		},
	}

	var name, lastname, telephone string
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := get()
			id, ok := a.session.Current()
			if !ok {
				return errNotLoggedIn
			}

			// The backend expects the full record on PUT, so start from the
			// current one and overlay only the flags that were set.
			c, err := a.clients.Get(cmd.Context(), id.ClientID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("lastname") {
				c.Lastname = lastname
			}
			if cmd.Flags().Changed("telephone") {
				c.Telephone = telephone
			}

			updated, err := a.clients.Update(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Printf("profile for %s %s saved\n", updated.Name, updated.Lastname)
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "first name")
	update.Flags().StringVar(&lastname, "lastname", "", "last name")
	update.Flags().StringVar(&telephone, "telephone", "", "telephone number")

	cmd.AddCommand(show, update)
	return cmd
}
