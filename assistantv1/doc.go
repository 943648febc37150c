/*
Package assistantv1 is the client of the Watson Assistant v1 API: workspaces,
intents, entities, entity values, synonyms, logs and the workspace message call.

Every operation takes an immutable options value built with its builder.
Required parameters are constructor arguments of the builder, optional ones
are chained setters, and Build reports the first required parameter that is
missing:

	opts, err := assistantv1.NewListValuesOptionsBuilder("ws-123", "color").
		PageLimit(10).
		Sort("-name").
		Build()
	if err != nil {
		return err
	}
	values, err := service.ListValues(ctx, opts)

A built options value never changes. Call its NewBuilder method to derive a
modified copy.

The option types and service methods in the per-tag files are rendered from
openapi_schema/assistant-v1.json by cmd/generate-options.
*/
package assistantv1

//go:generate go run ../cmd/generate-options --api assistant-v1 --pkg assistantv1 --out .
