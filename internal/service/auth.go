package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/cylin-dev/guestbook/internal/domain"
	"github.com/cylin-dev/guestbook/internal/errors"
	"github.com/cylin-dev/guestbook/internal/logger"
)

type AuthService interface {
	Login(creds domain.Credentials) (string, domain.User, error)
	CreateUser(name, email, password string, admin bool) (domain.UserId, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	UserByEmail(email string) (domain.User, error)
	SaveUser(user domain.User) (domain.UserId, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// SetPassword stores a bcrypt hash of plaintext on the user record.
// The plaintext is never persisted; the record has no field that could hold it.
func SetPassword(user *domain.User, plaintext string) error {
	passHash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return err
	}
	user.PassHash = string(passHash)
	return nil
}

// VerifyPassword recomputes the hash comparison. bcrypt's comparison is
// constant-time.
func VerifyPassword(user domain.User, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(plaintext)) == nil
}

// Login resolves credentials to a signed session token. The three failure
// causes stay distinct: unknown email (404), wrong password (401), account
// without the administrator flag (403). No session is established on failure.
func (a *Auth) Login(creds domain.Credentials) (string, domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(email)
	if err != nil {
		if errors.IsNotFound(err) {
			return "", domain.User{}, errors.NotFound("User not found")
		}
		return "", domain.User{}, err
	}

	if !VerifyPassword(user, creds.Password) {
		return "", domain.User{}, errors.BadCredentials("Wrong password")
	}

	if !user.Admin {
		return "", domain.User{}, errors.NotAuthorized("You are not an administrator")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create session token", "user_id", user.Id, "error", err)
		return "", domain.User{}, err
	}

	return token, user, nil
}

// CreateUser provisions an account. Only the create-admin tool calls this;
// no web route creates or mutates accounts.
func (a *Auth) CreateUser(name, email, password string, admin bool) (domain.UserId, error) {
	user := domain.User{
		Name:  name,
		Email: strings.ToLower(strings.TrimSpace(email)),
		Admin: admin,
	}
	if err := SetPassword(&user, password); err != nil {
		return -1, err
	}
	return a.storage.SaveUser(user)
}
