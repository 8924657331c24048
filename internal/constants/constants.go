package constants

// Session
const (
	SessionCookieName = "sns_session"
	ContextKeyUserID  = "user_id"
)

// Field length limits enforced at the serialization boundary
const (
	MaxEmailLength    = 50
	MaxNicknameLength = 20
	MaxTitleLength    = 100
	MaxCommentLength  = 100
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
