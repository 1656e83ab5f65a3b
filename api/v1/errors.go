package v1

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrUnauthorized        = newError(401, "unauthorized")
	ErrAccessDenied        = newError(403, "access denied")
	ErrNotFound            = newError(404, "not found")
	ErrInternalServerError = newError(500, "internal server error")

	// user errors
	ErrEmailAlreadyUse    = newError(1001, "The email is already in use.")
	ErrUsernameAlreadyUse = newError(1002, "The username is already in use.")

	// credential errors
	ErrUnsupportedProvider = newError(2001, "unsupported cloud provider")
	ErrCredentialNotFound  = newError(2002, "credential not found")
	ErrNoHealthyCredential = newError(2003, "no healthy credential available")
	ErrInvalidGroup        = newError(2004, "invalid credential group")

	// replenish errors
	ErrTemplateNotFound      = newError(3001, "instance template not found")
	ErrInvalidCheckInterval  = newError(3002, "check interval below the minimum of 60 seconds")
	ErrTaskNameAlreadyUse    = newError(3003, "a replenish task with this name already exists")
	ErrReplenishCreateFailed = newError(3004, "instance creation failed")
)
