package cli

import (
	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv1"
)

func newValuesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "values",
		Short: "Manage the values of an entity",
	}
	cmd.AddCommand(newValuesListCmd(a))
	cmd.AddCommand(newValuesCreateCmd(a))
	return cmd
}

func newValuesListCmd(a *app) *cobra.Command {
	var (
		workspaceID string
		entity      string
		export      bool
		page        pageFlags
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the values of an entity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.v1()
			if err != nil {
				return err
			}
			b := assistantv1.NewListValuesOptionsBuilder(workspaceID, entity)
			flags := cmd.Flags()
			if flags.Changed("export") {
				b.Export(export)
			}
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
			values, err := service.ListValues(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd, values, "values")
		},
	}
	cmd.Flags().StringVar(&workspaceID, "workspace-id", "", "workspace ID")
	cmd.Flags().StringVar(&entity, "entity", "", "entity name")
	cmd.Flags().BoolVar(&export, "export", false, "include all element content")
	page.register(cmd)
	return cmd
}

func newValuesCreateCmd(a *app) *cobra.Command {
	var (
		workspaceID string
		entity      string
		value       string
		valueType   string
		synonyms    []string
		patterns    []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a value of an entity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.v1()
			if err != nil {
				return err
			}
			b := assistantv1.NewCreateValueOptionsBuilder(workspaceID, entity, value).
				Synonyms(synonyms).
				Patterns(patterns)
			if valueType != "" {
				b.Type(valueType)
			}
			opts, err := b.Build()
			if err != nil {
				return err
			}
			created, err := service.CreateValue(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return a.print(cmd, created, "")
		},
	}
	cmd.Flags().StringVar(&workspaceID, "workspace-id", "", "workspace ID")
	cmd.Flags().StringVar(&entity, "entity", "", "entity name")
	cmd.Flags().StringVar(&value, "value", "", "text of the value")
	cmd.Flags().StringVar(&valueType, "type", "", "synonyms or patterns")
	cmd.Flags().StringSliceVar(&synonyms, "synonym", nil, "synonym of the value, repeatable")
	cmd.Flags().StringSliceVar(&patterns, "pattern", nil, "pattern of the value, repeatable")
	return cmd
}
