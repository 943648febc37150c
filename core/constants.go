package core

// HTTP-related constants for REST operations
// These constants provide type-safe header names, content types, and auth types

// HTTP Header Names
const (
	HeaderAccept               = "Accept"
	HeaderAuthorization        = "Authorization"
	HeaderContentType          = "Content-Type"
	HeaderUserAgent            = "User-Agent"
	HeaderTransactionID        = "X-Global-Transaction-Id"
	HeaderWatsonLearningOptOut = "X-Watson-Learning-Opt-Out"
	HeaderWatsonTest           = "X-Watson-Test"
)

// HTTP Content Types
const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// HTTP Authentication Types
const (
	AuthTypeBasic  = "Basic"
	AuthTypeBearer = "Bearer"
)

// VersionQueryParam carries the API version date on every call.
const VersionQueryParam = "version"
