package presentation

// Context keys set by the session middleware.
const (
	KeyUser  = "user"
	KeyToken = "session_token"
)

// Route parameter names.
const (
	IDParam       = "id"
	CategoryQuery = "type"
)
