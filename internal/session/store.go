package session

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Store interface {
	FindUser(email string) (*User, bool)
	VerifyCredentials(email, password string) bool
	RegisterRefreshToken(email string) string
	RedeemRefreshToken(email, refreshToken string) bool
}

type store struct {
	mutex         sync.Mutex
	users         map[string]*User
	refreshTokens map[string][]string
}

// NewStore seeds the process-wide user store. Seed passwords are hashed on the
// way in; the plaintext never leaves this constructor.
func NewStore(seed []SeedUser) Store {
	users := make(map[string]*User, len(seed))
	for _, seedUser := range seed {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seedUser.Password), bcrypt.DefaultCost)
		if err != nil {
			panic(err)
		}

		users[seedUser.Email] = &User{
			Email:        seedUser.Email,
			PasswordHash: passwordHash,
			Permissions:  seedUser.Permissions,
			Roles:        seedUser.Roles,
		}
	}

	return &store{
		users:         users,
		refreshTokens: make(map[string][]string),
	}
}

func (s *store) FindUser(email string) (*User, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	user, isFound := s.users[email]
	return user, isFound
}

func (s *store) VerifyCredentials(email, password string) bool {
	user, isFound := s.FindUser(email)
	if !isFound {
		return false
	}

	err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password))
	return err == nil
}

// RegisterRefreshToken appends a fresh opaque token to the email's token list.
// A user may hold multiple simultaneously valid refresh tokens.
func (s *store) RegisterRefreshToken(email string) string {
	refreshToken := uuid.New().String()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.refreshTokens[email] = append(s.refreshTokens[email], refreshToken)
	return refreshToken
}

// RedeemRefreshToken checks membership and removes the token in one critical
// section, so two concurrent refresh calls cannot both redeem the same token.
func (s *store) RedeemRefreshToken(email, refreshToken string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	registeredTokens := s.refreshTokens[email]
	for i, registeredToken := range registeredTokens {
		if registeredToken == refreshToken {
			s.refreshTokens[email] = append(registeredTokens[:i], registeredTokens[i+1:]...)
			return true
		}
	}

	return false
}
