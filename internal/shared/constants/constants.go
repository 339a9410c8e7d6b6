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
	HeaderXForwardedFor = "X-Forwarded-For"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Field length limits enforced before any row is written
	MaxTitleLength     = 200
	MaxBodyLength      = 20000
	MaxCommentLength   = 2000
	MaxTagLength       = 50
	MaxImageURLLength  = 500
	MaxCategoryLength  = 100

	// Database table names
	TableUsers      = "users"
	TableTickets    = "tickets"
	TableComments   = "comments"
	TableExercises  = "exercises"
	TableNotes      = "notes"
	TableNews       = "news"
	TableCategories = "categories"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgPendingReview       = "Item already has a pending review"
	ErrMsgNothingToReview     = "Nothing to review"
)
