package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
	"github.com/watson-developer-cloud/assistant-go-sdk/rest"
)

func newCallCmd(a *app) *cobra.Command {
	var api string
	cmd := &cobra.Command{
		Use:   "call OPERATION [wire_name=value ...]",
		Short: "Call any operation by id with untyped parameters",
		Long: `Call any operation by id. Values are decoded as JSON when possible
and sent as strings otherwise:

  assistantctl call listValues workspace_id=ws-123 entity=color page_limit=10
  assistantctl call --api assistant-v2 createSession assistant_id=a-1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			client, err := rest.NewClient(a.serviceConfig())
			if err != nil {
				return err
			}
			result, err := client.Call(cmd.Context(), openapi_schema.API(api), args[0], params)
			if err != nil {
				return err
			}
			if a.v.GetBool("json") {
				fmt.Fprintln(cmd.OutOrStdout(), result.PrettyJson("  "))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), result.PrettyTable())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&api, "api", string(openapi_schema.AssistantV1), "API definition the operation belongs to")
	return cmd
}

func parseParams(args []string) (core.Params, error) {
	params := core.Params{}
	for _, arg := range args {
		name, raw, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q is not of the form name=value", arg)
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		params[name] = value
	}
	return params, nil
}
