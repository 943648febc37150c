package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv2"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage assistant sessions",
	}
	cmd.AddCommand(newSessionCreateCmd(a))
	cmd.AddCommand(newSessionDeleteCmd(a))
	return cmd
}

func newSessionCreateCmd(a *app) *cobra.Command {
	var assistantID string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a session with an assistant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.v2()
			if err != nil {
				return err
			}
			opts, err := assistantv2.NewCreateSessionOptionsBuilder(assistantID).Build()
			if err != nil {
				return err
			}
			session, err := service.CreateSession(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd, session, "")
		},
	}
	cmd.Flags().StringVar(&assistantID, "assistant-id", "", "assistant ID")
	return cmd
}

func newSessionDeleteCmd(a *app) *cobra.Command {
	var assistantID, sessionID string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.v2()
			if err != nil {
				return err
			}
			opts, err := assistantv2.NewDeleteSessionOptionsBuilder(assistantID, sessionID).Build()
			if err != nil {
				return err
			}
			if err := service.DeleteSession(cmd.Context(), opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "session %s deleted\n", sessionID)
			return nil
		},
	}
	cmd.Flags().StringVar(&assistantID, "assistant-id", "", "assistant ID")
	cmd.Flags().StringVar(&sessionID, "session-id", "", "session ID")
	return cmd
}
