package secondbrain

import "fmt"

// ContactStatus is the pipeline state of a contact.
type ContactStatus string

const (
	ContactLead   ContactStatus = "Lead"
	ContactActive ContactStatus = "Active"
	ContactClosed ContactStatus = "Closed"
)

// ParseContactStatus parses a string into a ContactStatus.
func ParseContactStatus(s string) (ContactStatus, error) {
	switch ContactStatus(s) {
	case ContactLead, ContactActive, ContactClosed:
		return ContactStatus(s), nil
	default:
		return "", fmt.Errorf("unknown contact status: %q", s)
	}
}

// Contact is an independent CRM record with no cascade relationships.
type Contact struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Role    string        `json:"role"`
	Company string        `json:"company"`
	Status  ContactStatus `json:"status"`
}

// Contacts returns all contacts in creation order.
func (s *Store) Contacts() []Contact {
	return records[Contact](s, colContacts)
}

// AddContact creates a contact; the id field of the argument is ignored.
func (s *Store) AddContact(c Contact) Contact {
	c.ID = newID(s.now())
	contacts := append(s.Contacts(), c)
	s.write(colContacts, contacts)
	s.bus.notify()
	return c
}

// UpdateContact fully replaces the stored contact with the same id.
func (s *Store) UpdateContact(updated Contact) error {
	contacts := s.Contacts()
	for i, c := range contacts {
		if c.ID == updated.ID {
			contacts[i] = updated
			s.write(colContacts, contacts)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "contact", ID: updated.ID}
}

// DeleteContact removes the contact with the given id.
func (s *Store) DeleteContact(id string) error {
	contacts := s.Contacts()
	for i, c := range contacts {
		if c.ID == id {
			contacts = append(contacts[:i], contacts[i+1:]...)
			s.write(colContacts, contacts)
			s.bus.notify()
			return nil
		}
	}
	return &NotFoundError{Kind: "contact", ID: id}
}
