package assistantv1

import "github.com/watson-developer-cloud/assistant-go-sdk/core"

// Operations returns a copy of the descriptor of every operation of the service.
func Operations() []*core.Operation {
	return []*core.Operation{
		CreateIntentOperation(),
		CreateValueOperation(),
		CreateWorkspaceOperation(),
		DeleteValueOperation(),
		DeleteWorkspaceOperation(),
		GetValueOperation(),
		GetWorkspaceOperation(),
		ListEntitiesOperation(),
		ListIntentsOperation(),
		ListLogsOperation(),
		ListSynonymsOperation(),
		ListValuesOperation(),
		ListWorkspacesOperation(),
		MessageOperation(),
		UpdateValueOperation(),
		UpdateWorkspaceOperation(),
	}
}
