package configfile

import (
	"fmt"
	"maps"
	"slices"

	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// TagConfiguration flattens the file and its extends chain into a fresh
// tags.Configuration. It fails only when the chain has load or validation
// errors; flattening itself is total because later definitions replace
// earlier ones.
func (f *ConfigFile) TagConfiguration() (*tags.Configuration, error) {
	cfg := tags.NewConfiguration()
	if err := f.ConfigureConfiguration(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigureConfiguration applies the flattened chain to cfg: the standard
// tags unless suppressed, then each file base-first, so derived files
// override their bases.
func (f *ConfigFile) ConfigureConfiguration(cfg *tags.Configuration) error {
	if f.HasErrors() {
		msgs := f.AllMessages()
		return fmt.Errorf("configuration for %q has %d error(s): %s",
			f.FilePath, len(msgs), msgs[0].Text)
	}

	if !f.noStandardTags() {
		for _, def := range tags.StandardTags() {
			// Standard definitions are valid by construction.
			_ = cfg.AddTagDefinition(def)
		}
	}

	return f.apply(cfg)
}

// noStandardTags resolves the effective noStandardTags setting: the most
// derived file that sets it wins; unset everywhere means false.
func (f *ConfigFile) noStandardTags() bool {
	if v := f.findNoStandardTags(); v != nil {
		return *v
	}
	return false
}

func (f *ConfigFile) findNoStandardTags() *bool {
	if f.NoStandardTags != nil {
		return f.NoStandardTags
	}
	// Later extends entries shadow earlier ones, so scan in reverse.
	for i := len(f.bases) - 1; i >= 0; i-- {
		if v := f.bases[i].findNoStandardTags(); v != nil {
			return v
		}
	}
	return nil
}

// apply adds this file's contributions after its bases.
func (f *ConfigFile) apply(cfg *tags.Configuration) error {
	for _, base := range f.bases {
		if err := base.apply(cfg); err != nil {
			return err
		}
	}

	for _, schemaDef := range f.TagDefinitions {
		syntax, ok := tags.ParseSyntaxKind(schemaDef.SyntaxKind)
		if !ok {
			continue // already reported by validate
		}
		def := &tags.TagDefinition{
			TagName:       schemaDef.TagName,
			Syntax:        syntax,
			AllowMultiple: schemaDef.AllowMultiple,
		}
		if err := cfg.AddTagDefinition(def); err != nil {
			return fmt.Errorf("%s: %w", f.FilePath, err)
		}
	}

	// Maps are applied in sorted key order so diagnostics are stable.
	for _, canonical := range slices.Sorted(maps.Keys(f.Synonyms)) {
		for _, alias := range f.Synonyms[canonical] {
			if err := cfg.AddSynonym(canonical, alias); err != nil {
				return fmt.Errorf("%s: %w", f.FilePath, err)
			}
		}
	}
	for _, canonical := range slices.Sorted(maps.Keys(f.RemoveSynonyms)) {
		for _, alias := range f.RemoveSynonyms[canonical] {
			cfg.RemoveSynonym(canonical, alias)
		}
	}

	for _, tag := range slices.Sorted(maps.Keys(f.SupportForTags)) {
		cfg.SetSupportForTag(tag, f.SupportForTags[tag])
	}

	return nil
}
