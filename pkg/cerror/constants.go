package cerror

const (
	CodeTokenInvalid    = "token.invalid"
	CodeTokenExpired    = "token.expired"
	CodeDuplicateMovies = "duplicateMovies"
)

const (
	MessageTokenNotPresent    = "Token not present."
	MessageTokenInvalid       = "Token invalid."
	MessageInvalidTokenFormat = "Invalid token format."
)
