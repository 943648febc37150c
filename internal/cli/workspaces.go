package cli

import (
	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv1"
)

// pageFlags are shared by the list commands.
type pageFlags struct {
	pageLimit    int64
	sort         string
	cursor       string
	includeCount bool
	includeAudit bool
}

func (p *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&p.pageLimit, "page-limit", 0, "number of records per page")
	cmd.Flags().StringVar(&p.sort, "sort", "", "attribute to sort by, prefix with - for descending order")
	cmd.Flags().StringVar(&p.cursor, "cursor", "", "page to retrieve")
	cmd.Flags().BoolVar(&p.includeCount, "include-count", false, "include the number of records")
	cmd.Flags().BoolVar(&p.includeAudit, "include-audit", false, "include created and updated timestamps")
}

func newWorkspacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspaces",
		Short: "Manage workspaces",
	}
	cmd.AddCommand(newWorkspacesListCmd(a))
	return cmd
}

func newWorkspacesListCmd(a *app) *cobra.Command {
	var page pageFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the workspaces of the service instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.v1()
			if err != nil {
				return err
			}
			b := assistantv1.NewListWorkspacesOptionsBuilder()
			flags := cmd.Flags()
			if flags.Changed("page-limit") {
				b.PageLimit(page.pageLimit)
			}
			if flags.Changed("sort") {
				b.Sort(page.sort)
			}
			if flags.Changed("cursor") {
				b.Cursor(page.cursor)
			}
			if flags.Changed("include-count") {
				b.IncludeCount(page.includeCount)
			}
			if flags.Changed("include-audit") {
				b.IncludeAudit(page.includeAudit)
			}
			opts, err := b.Build()
			if err != nil {
				return err
			}
			workspaces, err := service.ListWorkspaces(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd, workspaces, "workspaces")
		},
	}
	page.register(cmd)
	return cmd
}
