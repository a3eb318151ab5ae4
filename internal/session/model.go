package session

// User is a seed-store record. Users are created once at process start and
// never mutated or deleted at runtime.
type User struct {
	Email        string
	PasswordHash []byte
	Permissions  []string
	Roles        []string
}

type SeedUser struct {
	Email       string
	Password    string
	Permissions []string
	Roles       []string
}

type CredentialsPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshPayload struct {
	RefreshToken string `json:"refreshToken"`
}

type UserInfo struct {
	Email       string   `json:"email"`
	Permissions []string `json:"permissions"`
	Roles       []string `json:"roles"`
}
