package assistantv2

import "github.com/watson-developer-cloud/assistant-go-sdk/core"

// Operations returns a copy of the descriptor of every operation of the service.
func Operations() []*core.Operation {
	return []*core.Operation{
		CreateSessionOperation(),
		DeleteSessionOperation(),
		MessageOperation(),
	}
}
