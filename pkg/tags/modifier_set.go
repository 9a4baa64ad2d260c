package tags

import "slices"

// ModifierTagSet is a derived view over the modifier tags encountered in one
// comment, keyed by canonical tag name. Membership queries resolve through
// the configuration's synonym table, so a tag and all its synonyms are
// interchangeable.
type ModifierTagSet struct {
	cfg   *Configuration
	names map[string]bool // canonical uppercase keys
	order []string        // canonical spellings in insertion order
}

// NewModifierTagSet creates an empty set resolving names through cfg.
func NewModifierTagSet(cfg *Configuration) *ModifierTagSet {
	return &ModifierTagSet{
		cfg:   cfg,
		names: make(map[string]bool),
	}
}

// Add records that the given modifier tag was encountered. Returns false if
// the canonical tag was already present.
func (s *ModifierTagSet) Add(def *TagDefinition) bool {
	key := def.Key()
	if s.names[key] {
		return false
	}
	s.names[key] = true
	s.order = append(s.order, def.TagName)
	return true
}

// HasTag reports membership of the given definition's canonical tag.
func (s *ModifierTagSet) HasTag(def *TagDefinition) bool {
	return s.names[def.Key()]
}

// HasTagName reports membership by tag name, resolving synonyms through the
// configuration. An undefined name is never a member.
func (s *ModifierTagSet) HasTagName(tagName string) bool {
	if s.cfg != nil {
		if def, ok := s.cfg.TryGetDefinition(tagName); ok {
			return s.names[def.Key()]
		}
	}
	return s.names[TagNameKey(tagName)]
}

// Names returns the canonical spellings of all member tags in insertion
// order.
func (s *ModifierTagSet) Names() []string {
	return slices.Clone(s.order)
}

// Len returns the number of member tags.
func (s *ModifierTagSet) Len() int {
	return len(s.order)
}
