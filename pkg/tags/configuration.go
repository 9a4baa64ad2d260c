package tags

import (
	"slices"
	"sync"
)

// Configuration holds the effective tag vocabulary: definitions keyed by
// their case-insensitive name plus a synonym table mapping alternate
// spellings to canonical tags. It is consulted by the parser to classify
// tag tokens.
type Configuration struct {
	mu          sync.RWMutex
	definitions map[string]*TagDefinition // uppercased name -> definition
	synonyms    map[string][]string       // canonical key -> alias names
	aliasIndex  map[string]string         // uppercased alias -> canonical key
	supported   map[string]bool           // uppercased name -> explicitly supported
}

// NewConfiguration creates an empty configuration with no tag definitions.
func NewConfiguration() *Configuration {
	return &Configuration{
		definitions: make(map[string]*TagDefinition),
		synonyms:    make(map[string][]string),
		aliasIndex:  make(map[string]string),
		supported:   make(map[string]bool),
	}
}

// NewDefaultConfiguration creates a configuration seeded with the standard
// tag set and no synonyms.
func NewDefaultConfiguration() *Configuration {
	cfg := NewConfiguration()
	for _, def := range StandardTags() {
		// Standard definitions are valid by construction.
		_ = cfg.AddTagDefinition(def)
	}
	return cfg
}

// defaultConfiguration is the frozen process-wide default, built once.
//
//nolint:gochecknoglobals // Lazily-built, read-only after construction.
var (
	defaultConfiguration     *Configuration
	defaultConfigurationOnce sync.Once
)

// Default returns the shared default configuration: standard tags only,
// no custom synonyms. Callers must not mutate it; use NewDefaultConfiguration
// for a private copy.
func Default() *Configuration {
	defaultConfigurationOnce.Do(func() {
		defaultConfiguration = NewDefaultConfiguration()
	})
	return defaultConfiguration
}

// AddTagDefinition registers a tag definition. Redefining an existing tag
// with the same syntax kind replaces it (more derived configuration files
// override base files); redefining it under a different syntax kind is a
// ConfigurationError. The name must also not collide with a registered
// synonym of another tag.
func (c *Configuration) AddTagDefinition(def *TagDefinition) error {
	if err := ValidateTagName(def.TagName); err != nil {
		return &ConfigurationError{TagName: def.TagName, Reason: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := def.Key()
	if existing, ok := c.definitions[key]; ok && existing.Syntax != def.Syntax {
		return &ConfigurationError{
			TagName: def.TagName,
			Reason:  "already defined with syntax kind " + existing.Syntax.String(),
		}
	}
	if canonical, ok := c.aliasIndex[key]; ok {
		return &ConfigurationError{
			TagName: def.TagName,
			Reason:  "already registered as a synonym of " + canonical,
		}
	}

	c.definitions[key] = def
	return nil
}

// AddSynonym declares alias as an alternate spelling of the canonical tag.
// The canonical tag must be defined and the alias must not collide with any
// defined tag or a synonym of a different tag.
func (c *Configuration) AddSynonym(canonicalTag, alias string) error {
	if err := ValidateTagName(alias); err != nil {
		return &ConfigurationError{TagName: alias, Reason: err.Error()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	canonicalKey := TagNameKey(canonicalTag)
	if _, ok := c.definitions[canonicalKey]; !ok {
		return &ConfigurationError{
			TagName: alias,
			Reason:  "synonym refers to undefined tag " + canonicalTag,
		}
	}

	aliasKey := TagNameKey(alias)
	if _, ok := c.definitions[aliasKey]; ok {
		return &ConfigurationError{
			TagName: alias,
			Reason:  "synonym collides with a defined tag",
		}
	}
	if existing, ok := c.aliasIndex[aliasKey]; ok && existing != canonicalKey {
		return &ConfigurationError{
			TagName: alias,
			Reason:  "already a synonym of " + existing,
		}
	}

	if _, ok := c.aliasIndex[aliasKey]; !ok {
		c.synonyms[canonicalKey] = append(c.synonyms[canonicalKey], alias)
		c.aliasIndex[aliasKey] = canonicalKey
	}
	return nil
}

// RemoveSynonym withdraws a previously-added synonym. Removing an unknown
// synonym is a no-op: a derived configuration file may delete a synonym that
// a base file never added.
func (c *Configuration) RemoveSynonym(canonicalTag, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	canonicalKey := TagNameKey(canonicalTag)
	aliasKey := TagNameKey(alias)
	if c.aliasIndex[aliasKey] != canonicalKey {
		return
	}

	delete(c.aliasIndex, aliasKey)
	list := c.synonyms[canonicalKey]
	list = slices.DeleteFunc(list, func(s string) bool {
		return TagNameKey(s) == aliasKey
	})
	if len(list) == 0 {
		delete(c.synonyms, canonicalKey)
	} else {
		c.synonyms[canonicalKey] = list
	}
}

// TryGetDefinition resolves a tag name to its definition, case-insensitively.
// Direct definitions are checked first, then the synonym table. Returns
// (nil, false) for an unknown tag; that is not an error — the parser
// proceeds treating it as a custom/undefined tag.
func (c *Configuration) TryGetDefinition(tagName string) (*TagDefinition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := TagNameKey(tagName)
	if def, ok := c.definitions[key]; ok {
		return def, true
	}
	if canonical, ok := c.aliasIndex[key]; ok {
		return c.definitions[canonical], true
	}
	return nil, false
}

// Synonyms returns the declared synonyms of a canonical tag, in declaration
// order. Returns nil when the tag has none.
func (c *Configuration) Synonyms(canonicalTag string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	list := c.synonyms[TagNameKey(canonicalTag)]
	if list == nil {
		return nil
	}
	return slices.Clone(list)
}

// SetSupportForTag marks a tag as explicitly supported or unsupported by the
// consuming tool. When any tag has been marked, the parser reports defined
// tags that are not marked supported.
func (c *Configuration) SetSupportForTag(tagName string, supported bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.supported[TagNameKey(tagName)] = supported
}

// SupportChecksEnabled returns true when at least one tag has an explicit
// support marking.
func (c *Configuration) SupportChecksEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.supported) > 0
}

// IsTagSupported returns true when the tag (or the canonical tag it is a
// synonym of) is marked supported.
func (c *Configuration) IsTagSupported(tagName string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := TagNameKey(tagName)
	if canonical, ok := c.aliasIndex[key]; ok {
		key = canonical
	}
	return c.supported[key]
}

// Definitions returns all tag definitions sorted by name for deterministic
// listings.
func (c *Configuration) Definitions() []*TagDefinition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*TagDefinition, 0, len(c.definitions))
	for _, def := range c.definitions {
		result = append(result, def)
	}
	slices.SortFunc(result, func(a, b *TagDefinition) int {
		switch {
		case a.Key() < b.Key():
			return -1
		case a.Key() > b.Key():
			return 1
		default:
			return 0
		}
	})
	return result
}
