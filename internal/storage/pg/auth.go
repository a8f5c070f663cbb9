package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/cylin-dev/guestbook/internal/domain"
	internal_errors "github.com/cylin-dev/guestbook/internal/errors"
)

// SaveUser inserts an account record. Accounts are provisioned out-of-band
// (cmd/tools/create-admin); no web handler calls this.
func (s *Storage) SaveUser(user domain.User) (domain.UserId, error) {
	ctx, cancel := opContext()
	defer cancel()

	var id domain.UserId
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users(name, email, password_hash, is_admin) VALUES($1, $2, $3, $4) RETURNING id",
		user.Name, user.Email, user.PassHash, user.Admin).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return -1, internal_errors.Conflict("A user with this email already exists")
		}
		return -1, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

// UserByEmail fetches a single account record by its unique email.
func (s *Storage) UserByEmail(email string) (domain.User, error) {
	ctx, cancel := opContext()
	defer cancel()

	var user domain.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, password_hash, is_admin FROM users WHERE email = $1", email).
		Scan(&user.Id, &user.Name, &user.Email, &user.PassHash, &user.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}
