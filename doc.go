/*
Package assistant is the Go client of IBM Watson Assistant.

The typed clients live in assistantv1 and assistantv2. Each API operation has
an immutable options type built through a builder that takes the required
parameters as arguments and the optional ones as chained setters:

	client, err := assistant.NewClient(&assistant.ServiceConfig{
		Version:   "2018-07-10",
		IAMApiKey: os.Getenv("ASSISTANT_APIKEY"),
	})
	if err != nil {
		return err
	}
	opts, err := assistantv1.NewListValuesOptionsBuilder("ws-123", "color").
		PageLimit(10).
		Sort("-name").
		Build()
	if err != nil {
		return err
	}
	values, err := client.V1.ListValues(ctx, opts)

Optional parameters that were never set are reported as unset by the options
accessors and are never sent. Client.Call performs any operation by id with
untyped parameters and returns the raw Record.

Set ASSISTANT_LOG=info or ASSISTANT_LOG=debug to log requests and responses.
*/
package assistant
