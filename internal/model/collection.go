package model

import (
	"iter"
	"slices"
	"sort"
)

// InputKind identifies the shape of an Input.
type InputKind int

const (
	InputSingle InputKind = iota
	InputMany
	InputKeyed
)

// Input is the argument to Merge and Remove: a single contact, a sequence of
// contacts, or a name-keyed mapping of contacts.
type Input struct {
	Kind    InputKind
	Contact Contact
	Many    []Contact
	Keyed   map[string]Contact
}

// Single wraps one contact as an Input.
func Single(c Contact) Input {
	return Input{Kind: InputSingle, Contact: c}
}

// Many wraps a sequence of contacts as an Input.
func Many(cs ...Contact) Input {
	return Input{Kind: InputMany, Many: cs}
}

// Keyed wraps a name-keyed mapping as an Input. Only the values are used.
func Keyed(m map[string]Contact) Input {
	return Input{Kind: InputKeyed, Keyed: m}
}

// contacts flattens the input into an ordered slice.
// Keyed values are taken in sorted key order so results are deterministic.
func (in Input) contacts() []Contact {
	switch in.Kind {
	case InputSingle:
		return []Contact{in.Contact}
	case InputMany:
		return in.Many
	case InputKeyed:
		keys := make([]string, 0, len(in.Keyed))
		for k := range in.Keyed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Contact, 0, len(keys))
		for _, k := range keys {
			out = append(out, in.Keyed[k])
		}
		return out
	default:
		return nil
	}
}

// Collection is an ordered sequence of unique contacts.
// No two elements are Equal; merging a duplicate is a silent no-op.
// The zero value is an empty collection ready to use.
type Collection struct {
	index    map[string]int // Key() -> position in contacts
	contacts []Contact
}

// NewCollection returns a collection holding initial, with duplicates dropped.
func NewCollection(initial ...Contact) *Collection {
	c := &Collection{index: make(map[string]int, len(initial))}
	c.MergeMany(initial)
	return c
}

// Clone returns an independent copy of c.
func (c *Collection) Clone() *Collection {
	out := &Collection{
		index:    make(map[string]int, len(c.index)),
		contacts: slices.Clone(c.contacts),
	}
	for k, v := range c.index {
		out.index[k] = v
	}
	return out
}

// Merge adds every contact in the input that is not already present.
func (c *Collection) Merge(in Input) {
	c.MergeMany(in.contacts())
}

// MergeOne appends contact unless an equal contact is already present.
func (c *Collection) MergeOne(contact Contact) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	key := contact.Key()
	if _, ok := c.index[key]; ok {
		return
	}
	c.index[key] = len(c.contacts)
	c.contacts = append(c.contacts, contact)
}

// MergeMany merges each contact in order.
func (c *Collection) MergeMany(cs []Contact) {
	for _, contact := range cs {
		c.MergeOne(contact)
	}
}

// MergeKeyed merges the values of m.
func (c *Collection) MergeKeyed(m map[string]Contact) {
	c.Merge(Keyed(m))
}

// Remove removes the stored element equal to each contact in the input.
// Removal is all-or-nothing: if any input contact has no distinct stored
// match, a *NotFoundError is returned and the collection is left unchanged.
func (c *Collection) Remove(in Input) error {
	return c.RemoveMany(in.contacts())
}

// RemoveOne removes the stored element equal to contact.
func (c *Collection) RemoveOne(contact Contact) error {
	return c.RemoveMany([]Contact{contact})
}

// RemoveMany removes the stored element equal to each contact in cs.
// An input that names the same contact twice fails on the second occurrence,
// because the first one already claims the stored element.
func (c *Collection) RemoveMany(cs []Contact) error {
	drop := make(map[string]bool, len(cs))
	for _, contact := range cs {
		key := contact.Key()
		if _, ok := c.index[key]; !ok || drop[key] {
			return &NotFoundError{Name: contact.Name()}
		}
		drop[key] = true
	}
	if len(drop) == 0 {
		return nil
	}

	kept := c.contacts[:0]
	for _, contact := range c.contacts {
		if !drop[contact.Key()] {
			kept = append(kept, contact)
		}
	}
	clear(c.contacts[len(kept):])
	c.contacts = kept
	c.reindex()
	return nil
}

// RemoveKeyed removes the values of m.
func (c *Collection) RemoveKeyed(m map[string]Contact) error {
	return c.Remove(Keyed(m))
}

// Union returns a new collection holding c merged with the input.
// c is not modified.
func (c *Collection) Union(in Input) *Collection {
	out := c.Clone()
	out.Merge(in)
	return out
}

// Difference returns a new collection holding c with the input removed.
// c is not modified.
func (c *Collection) Difference(in Input) (*Collection, error) {
	out := c.Clone()
	if err := out.Remove(in); err != nil {
		return nil, err
	}
	return out, nil
}

// Sort orders the collection by lowercase name. The sort is stable.
func (c *Collection) Sort() {
	slices.SortStableFunc(c.contacts, Contact.Compare)
	c.reindex()
}

// FindByName returns all contacts whose name matches name, ignoring case,
// in current store order.
func (c *Collection) FindByName(name string) []Contact {
	key := NameKey(name)
	var out []Contact
	for _, contact := range c.contacts {
		if contact.Key() == key {
			out = append(out, contact)
		}
	}
	return out
}

// Contains reports whether a contact equal to contact is present.
func (c *Collection) Contains(contact Contact) bool {
	_, ok := c.index[contact.Key()]
	return ok
}

// Len returns the number of contacts.
func (c *Collection) Len() int {
	return len(c.contacts)
}

// At returns the contact at position i. It panics if i is out of range.
func (c *Collection) At(i int) Contact {
	return c.contacts[i]
}

// All returns an iterator over the contacts in store order.
// Each iteration walks a snapshot taken when it starts.
func (c *Collection) All() iter.Seq[Contact] {
	return func(yield func(Contact) bool) {
		snapshot := slices.Clone(c.contacts)
		for _, contact := range snapshot {
			if !yield(contact) {
				return
			}
		}
	}
}

// Contacts returns a copy of the contacts in store order.
func (c *Collection) Contacts() []Contact {
	return slices.Clone(c.contacts)
}

// Records returns the structural projection of every contact, in order.
func (c *Collection) Records() []Record {
	out := make([]Record, 0, len(c.contacts))
	for _, contact := range c.contacts {
		out = append(out, contact.Record())
	}
	return out
}

func (c *Collection) reindex() {
	if c.index == nil {
		c.index = make(map[string]int, len(c.contacts))
	}
	clear(c.index)
	for i, contact := range c.contacts {
		c.index[contact.Key()] = i
	}
}
