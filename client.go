package assistant

import (
	"github.com/watson-developer-cloud/assistant-go-sdk/core"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
	"github.com/watson-developer-cloud/assistant-go-sdk/rest"
)

type (
	ServiceConfig   = core.ServiceConfig
	Params          = core.Params
	Record          = core.Record
	RecordSet       = core.RecordSet
	Renderable      = core.Renderable
	ValidationError = core.ValidationError
	ApiError        = core.ApiError
	Client          = rest.Client
	API             = openapi_schema.API
)

const (
	AssistantV1 = openapi_schema.AssistantV1
	AssistantV2 = openapi_schema.AssistantV2
)

func NewClient(config *ServiceConfig) (*Client, error) {
	return rest.NewClient(config)
}

func IsValidationErr(err error) bool {
	return core.IsValidationErr(err)
}

func IsApiError(err error) bool {
	return core.IsApiError(err)
}
