package tags

import "fmt"

// ConfigurationError reports an invalid mutation of a Configuration, such as
// redefining a tag under a different syntax kind. It is a project-setup
// error, distinct from parse-time diagnostics: a broken configuration should
// not silently degrade every subsequent parse.
type ConfigurationError struct {
	// TagName is the tag or alias the mutation referred to.
	TagName string

	// Reason describes why the mutation was rejected.
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tag configuration error for %s: %s", e.TagName, e.Reason)
}
