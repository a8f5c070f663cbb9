package service

import (
	"github.com/cylin-dev/guestbook/internal/domain"
)

type GuestbookService interface {
	List() ([]domain.Entry, error)
	Create(name, email, message, icon string) (domain.Entry, error)
	Get(id domain.EntryId) (domain.Entry, error)
	Update(id domain.EntryId, name, email, message, icon string) (domain.Entry, error)
	Delete(id domain.EntryId) error
}

type Guestbook struct {
	storage   GuestbookStorage
	validator EntryValidator
}

type GuestbookStorage interface {
	CreateEntry(name, email, message, icon string) (domain.Entry, error)
	Entries() ([]domain.Entry, error)
	Entry(id domain.EntryId) (domain.Entry, error)
	UpdateEntry(id domain.EntryId, name, email, message, icon string) (domain.Entry, error)
	DeleteEntry(id domain.EntryId) error
}

type EntryValidator interface {
	Entry(name, email, message, icon string) error
}

func NewGuestbook(storage GuestbookStorage, validator EntryValidator) *Guestbook {
	return &Guestbook{storage, validator}
}

// List returns entries in insertion order (the storage layer orders by id).
func (g *Guestbook) List() ([]domain.Entry, error) {
	return g.storage.Entries()
}

func (g *Guestbook) Create(name, email, message, icon string) (domain.Entry, error) {
	if icon == "" {
		icon = domain.DefaultIcon
	}
	if err := g.validator.Entry(name, email, message, icon); err != nil {
		return domain.Entry{}, err
	}
	return g.storage.CreateEntry(name, email, message, icon)
}

func (g *Guestbook) Get(id domain.EntryId) (domain.Entry, error) {
	return g.storage.Entry(id)
}

// Update replaces all four mutable fields of the entry.
func (g *Guestbook) Update(id domain.EntryId, name, email, message, icon string) (domain.Entry, error) {
	if icon == "" {
		icon = domain.DefaultIcon
	}
	if err := g.validator.Entry(name, email, message, icon); err != nil {
		return domain.Entry{}, err
	}
	return g.storage.UpdateEntry(id, name, email, message, icon)
}

func (g *Guestbook) Delete(id domain.EntryId) error {
	return g.storage.DeleteEntry(id)
}
