package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cylin-dev/guestbook/internal/domain"
	internal_errors "github.com/cylin-dev/guestbook/internal/errors"
)

// CreateEntry inserts a new guestbook entry. Duplicate email hits the unique
// index and is reported as a 409; the insert itself is the atomic
// check-and-insert required for the uniqueness invariant.
func (s *Storage) CreateEntry(name, email, message, icon string) (domain.Entry, error) {
	ctx, cancel := opContext()
	defer cancel()

	created := time.Now().UTC().Round(time.Microsecond) // database rounds to microsecond anyway
	entry := domain.Entry{Name: name, Email: email, Message: message, Icon: icon, Created: created}
	err := s.db.QueryRowContext(ctx, `
	INSERT INTO guestbook(guestname, email, message, icon, postdate)
	VALUES($1, $2, $3, $4, $5)
	RETURNING id`,
		name, email, message, icon, created).Scan(&entry.Id)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Entry{}, internal_errors.Conflict("An entry with this email already exists")
		}
		return domain.Entry{}, fmt.Errorf("failed to insert entry: %w", err)
	}
	return entry, nil
}

// Entries returns all guestbook entries in insertion order (ORDER BY id).
// The ordering is explicit so callers don't depend on store-natural order.
func (s *Storage) Entries() ([]domain.Entry, error) {
	ctx, cancel := opContext()
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
	SELECT id, guestname, email, message, icon, (postdate at time zone 'utc')
	FROM guestbook
	ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Id, &e.Name, &e.Email, &e.Message, &e.Icon, &e.Created); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func (s *Storage) Entry(id domain.EntryId) (domain.Entry, error) {
	ctx, cancel := opContext()
	defer cancel()

	var e domain.Entry
	err := s.db.QueryRowContext(ctx, `
	SELECT id, guestname, email, message, icon, (postdate at time zone 'utc')
	FROM guestbook
	WHERE id = $1`, id).Scan(&e.Id, &e.Name, &e.Email, &e.Message, &e.Icon, &e.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, internal_errors.NotFound("Entry not found")
		}
		return domain.Entry{}, fmt.Errorf("failed to query entry: %w", err)
	}
	return e, nil
}

// UpdateEntry replaces all four mutable fields. Id and postdate are immutable.
func (s *Storage) UpdateEntry(id domain.EntryId, name, email, message, icon string) (domain.Entry, error) {
	ctx, cancel := opContext()
	defer cancel()

	var e domain.Entry
	err := s.db.QueryRowContext(ctx, `
	UPDATE guestbook SET
		guestname = $1,
		email = $2,
		message = $3,
		icon = $4
	WHERE id = $5
	RETURNING id, guestname, email, message, icon, (postdate at time zone 'utc')`,
		name, email, message, icon, id).Scan(&e.Id, &e.Name, &e.Email, &e.Message, &e.Icon, &e.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, internal_errors.NotFound("Entry not found")
		}
		if isUniqueViolation(err) {
			return domain.Entry{}, internal_errors.Conflict("Another entry already uses this email")
		}
		return domain.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}
	return e, nil
}

func (s *Storage) DeleteEntry(id domain.EntryId) error {
	ctx, cancel := opContext()
	defer cancel()

	result, err := s.db.ExecContext(ctx, "DELETE FROM guestbook WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows for entry deletion: %w", err)
	}
	if deleted == 0 {
		return internal_errors.NotFound("Entry not found")
	}
	return nil
}
