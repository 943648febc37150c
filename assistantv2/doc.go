/*
Package assistantv2 is the client of the Watson Assistant v2 API. An assistant
is addressed by its id; a conversation with it runs inside a session:

	sessionOpts, err := assistantv2.NewCreateSessionOptionsBuilder(assistantID).Build()
	if err != nil {
		return err
	}
	created, err := service.CreateSession(ctx, sessionOpts)
	if err != nil {
		return err
	}
	opts, err := assistantv2.NewMessageOptionsBuilder(assistantID, created.SessionID).
		Input(assistantv2.MessageInput{MessageType: "text", Text: "Hello"}).
		Build()
	response, err := service.Message(ctx, opts)

Options values are immutable and built the same way as in assistantv1.
*/
package assistantv2

//go:generate go run ../cmd/generate-options --api assistant-v2 --pkg assistantv2 --out .
