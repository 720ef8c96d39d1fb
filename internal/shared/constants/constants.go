package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// HeaderPageCode carries an explicit page code on a request. When present
	// and non-blank it wins over path-based page code detection.
	HeaderPageCode = "X-Page-Code"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRoles = "user_roles"
	ContextKeyRequestID = "request_id"

	// Well-known action codes. ActionView gates page visibility in the
	// navigation tree; the check compares the Action's code field against
	// this literal, never its type field.
	ActionView   = "VIEW"
	ActionCreate = "CREATE"
	ActionEdit   = "EDIT"
	ActionDelete = "DELETE"

	// RoleAdmin is the role code that triggers the guard's admin bypass.
	RoleAdmin = "ADMIN"

	// Database table names
	TablePages       = "pages"
	TableActions     = "actions"
	TablePageActions = "page_actions"
	TablePermissions = "permissions"
	TableRoles       = "roles"
	TableUserRoles   = "user_roles"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"

	// Guard denial messages
	ErrMsgNotAuthenticated        = "user not authenticated"
	ErrMsgNoPermissionsSpecified  = "no permissions specified"
	ErrMsgNoMatchingPermission    = "no matching page:action permission found"
)
