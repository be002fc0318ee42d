// Package ops implements the contact operations on top of a persisted collection.
package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacksmith/contacts/internal/logger"
	"github.com/jacksmith/contacts/internal/model"
	"github.com/jacksmith/contacts/internal/storage"
)

// ContactChanges represents fields that can be updated on a contact.
// A nil or blank field keeps the current value.
type ContactChanges struct {
	Phone *string
	Email *string
}

// Manager owns the in-memory collection and writes the whole collection to
// its Store after every mutation.
type Manager struct {
	store    Store
	log      *logger.Logger
	contacts *model.Collection
}

// NewManager loads the persisted contacts from store.
//
// A missing backing file or one that cannot be decoded is reported as a
// warning and leaves the manager empty. Any other read failure is returned.
func NewManager(store Store, log *logger.Logger) (*Manager, error) {
	if log == nil {
		log = logger.Nop()
	}
	m := &Manager{
		store:    store,
		log:      log.With("file", store.Path()),
		contacts: model.NewCollection(),
	}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) load() error {
	data, err := m.store.Load()
	if err != nil {
		if errors.Is(err, storage.ErrMissing) {
			m.log.Warn("backing file not found, starting empty")
			return nil
		}
		return err
	}

	records, err := model.DecodeRecords(data)
	if err != nil {
		m.log.Warn("failed to parse saved contacts, starting empty", "error", err)
		return nil
	}

	for i, r := range records {
		c, err := model.FromRecord(r)
		if err != nil {
			m.log.Warn("skipping invalid saved contact", "record", i+1, "error", err)
			continue
		}
		m.contacts.MergeOne(c)
	}
	m.contacts.Sort()

	if len(records) > 0 {
		m.log.Info("loaded contacts", "count", m.contacts.Len())
	}
	return nil
}

// Collection returns the live collection. Callers must not mutate it.
func (m *Manager) Collection() *model.Collection {
	return m.contacts
}

// Add validates a new contact and merges it in.
// If a contact with the same name already exists, the stored contact is kept
// unchanged and returned.
func (m *Manager) Add(name, phone, email string) (model.Contact, error) {
	c, err := model.NewContact(name, phone, email)
	if err != nil {
		return model.Contact{}, err
	}

	err = m.mutate(func(col *model.Collection) error {
		col.MergeOne(c)
		return nil
	})
	if err != nil {
		return model.Contact{}, err
	}

	stored := m.contacts.FindByName(c.Name())
	if len(stored) == 0 {
		return c, nil
	}
	if stored[0].Phone() != c.Phone() || stored[0].Email() != c.Email() {
		m.log.Debug("contact already exists, keeping stored values", "name", c.Name())
	}
	return stored[0], nil
}

// Update replaces the phone and/or email of the named contact.
// Returns a *model.NotFoundError if no contact has that name.
func (m *Manager) Update(name string, changes ContactChanges) (model.Contact, error) {
	matches := m.contacts.FindByName(name)
	if len(matches) == 0 {
		return model.Contact{}, &model.NotFoundError{Name: strings.TrimSpace(name)}
	}
	current := matches[0]

	phone := current.Phone()
	if changes.Phone != nil && strings.TrimSpace(*changes.Phone) != "" {
		phone = *changes.Phone
	}
	email := current.Email()
	if changes.Email != nil && strings.TrimSpace(*changes.Email) != "" {
		email = *changes.Email
	}

	updated, err := model.NewContact(current.Name(), phone, email)
	if err != nil {
		return model.Contact{}, err
	}

	err = m.mutate(func(col *model.Collection) error {
		if err := col.RemoveOne(current); err != nil {
			return err
		}
		col.MergeOne(updated)
		return nil
	})
	if err != nil {
		return model.Contact{}, err
	}
	return updated, nil
}

// Delete removes every contact with the given name and returns how many
// were removed. Returns a *model.NotFoundError if there were none.
func (m *Manager) Delete(name string) (int, error) {
	matches := m.contacts.FindByName(name)
	if len(matches) == 0 {
		return 0, &model.NotFoundError{Name: strings.TrimSpace(name)}
	}

	err := m.mutate(func(col *model.Collection) error {
		return col.RemoveMany(matches)
	})
	if err != nil {
		return 0, err
	}
	return len(matches), nil
}

// List returns all contacts in order.
func (m *Manager) List() []model.Contact {
	return m.contacts.Contacts()
}

// Search returns the contacts with the given name.
// Returns a *model.NotFoundError if there are none.
func (m *Manager) Search(name string) ([]model.Contact, error) {
	matches := m.contacts.FindByName(name)
	if len(matches) == 0 {
		return nil, &model.NotFoundError{Name: strings.TrimSpace(name)}
	}
	return matches, nil
}

// mutate applies fn to a copy of the collection, sorts it, and persists it.
// The live collection is only replaced once the write succeeds, so a failed
// save leaves memory matching the file.
func (m *Manager) mutate(fn func(col *model.Collection) error) error {
	next := m.contacts.Clone()
	if err := fn(next); err != nil {
		return err
	}
	next.Sort()

	data, err := model.EncodeRecords(next.Records())
	if err != nil {
		return err
	}
	if err := m.store.Save(data); err != nil {
		m.log.Error("failed to save contacts", "error", err)
		return fmt.Errorf("contacts not saved: %w", err)
	}

	m.contacts = next
	m.log.Debug("saved contacts", "count", next.Len())
	return nil
}
