package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableEmployees       = "employees"
	TablePermissionTypes = "permission_types"
	TablePermissions     = "permissions"

	// Search defaults
	DefaultSearchIndex    = "permissions"
	DefaultSearchListSize = 10000

	// Broker defaults
	DefaultOperationsTopic = "permission-operations"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
