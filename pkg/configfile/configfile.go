// Package configfile loads tsdoc.json configuration files: upward discovery
// from a source folder, "extends" chain resolution (relative paths and
// node_modules packages), cycle detection, and base-first flattening into a
// tags.Configuration.
//
// Loading never fails with an error: every problem is recorded as a
// diagnostic on the returned ConfigFile, mirroring how the parser handles
// malformed comments.
package configfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gotsdoc/pkg/docast"
	"github.com/yaklabco/gotsdoc/pkg/parser"
	"github.com/yaklabco/gotsdoc/pkg/tags"
)

// ConfigFileName is the canonical configuration file name.
const ConfigFileName = "tsdoc.json"

// configFileNames are the file names discovery searches for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	"tsdoc.json",
	"tsdoc.yaml",
	"tsdoc.yml",
}

// maxExtendsDepth bounds pathological extends chains that are long but not
// cyclic.
const maxExtendsDepth = 32

// TagDefinitionSchema is one entry of the "tagDefinitions" array.
type TagDefinitionSchema struct {
	TagName       string `json:"tagName" yaml:"tagName"`
	SyntaxKind    string `json:"syntaxKind" yaml:"syntaxKind"`
	AllowMultiple bool   `json:"allowMultiple,omitempty" yaml:"allowMultiple,omitempty"`
}

// schema is the on-disk shape of a configuration file.
type schema struct {
	Schema         string                `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Extends        []string              `json:"extends,omitempty" yaml:"extends,omitempty"`
	NoStandardTags *bool                 `json:"noStandardTags,omitempty" yaml:"noStandardTags,omitempty"`
	TagDefinitions []TagDefinitionSchema `json:"tagDefinitions,omitempty" yaml:"tagDefinitions,omitempty"`
	SupportForTags map[string]bool       `json:"supportForTags,omitempty" yaml:"supportForTags,omitempty"`
	Synonyms       map[string][]string   `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	RemoveSynonyms map[string][]string   `json:"removeSynonyms,omitempty" yaml:"removeSynonyms,omitempty"`
}

// ConfigFile is one loaded configuration file together with its resolved
// extends chain and the diagnostics produced while loading it.
type ConfigFile struct {
	// FilePath is the absolute path this file was loaded from. Empty when
	// discovery found no file.
	FilePath string

	// FileNotFound is true when discovery found no configuration file.
	// The file then behaves as an empty configuration.
	FileNotFound bool

	// TSDocSchema holds the "$schema" value as written, or empty when the
	// file omitted it.
	TSDocSchema string

	// Extends holds the raw extends specifiers as written.
	Extends []string

	// NoStandardTags, when set, controls whether the standard tag set is
	// seeded. The most derived file that sets it wins.
	NoStandardTags *bool

	// TagDefinitions holds this file's own definitions, in file order.
	TagDefinitions []TagDefinitionSchema

	// SupportForTags holds this file's explicit support markings.
	SupportForTags map[string]bool

	// Synonyms maps canonical tag names to synonyms this file declares.
	Synonyms map[string][]string

	// RemoveSynonyms maps canonical tag names to synonyms this file
	// withdraws from its bases.
	RemoveSynonyms map[string][]string

	bases []*ConfigFile
	log   *parser.MessageLog
}

// Log returns this file's own diagnostics. Base files carry their own logs;
// use HasErrors or AllMessages for the whole chain.
func (f *ConfigFile) Log() *parser.MessageLog {
	return f.log
}

// ExtendsFiles returns the resolved base files in declaration order.
func (f *ConfigFile) ExtendsFiles() []*ConfigFile {
	return f.bases
}

// HasErrors reports whether this file or any base produced diagnostics.
// A missing file is not an error by itself: its single not-found notice
// still flattens to the default vocabulary.
func (f *ConfigFile) HasErrors() bool {
	for _, msg := range f.log.Messages() {
		if f.FileNotFound && msg.ID == parser.MsgConfigFileNotFound {
			continue
		}
		return true
	}
	for _, base := range f.bases {
		if base.HasErrors() {
			return true
		}
	}
	return false
}

// AllMessages returns the diagnostics of the whole chain, base-first.
func (f *ConfigFile) AllMessages() []*parser.ParserMessage {
	var out []*parser.ParserMessage
	for _, base := range f.bases {
		out = append(out, base.AllMessages()...)
	}
	return append(out, f.log.Messages()...)
}

// LoadForFolder finds the configuration governing a source folder by
// searching upward from folder for tsdoc.json (or its YAML form). When no
// file exists up to the filesystem root, the returned file has FileNotFound
// set and a single diagnostic; it still flattens as an empty configuration.
func LoadForFolder(folder string) *ConfigFile {
	path, err := FindConfigPath(folder)
	if err != nil || path == "" {
		file := &ConfigFile{
			FileNotFound: true,
			log:          parser.NewMessageLog(),
		}
		reason := fmt.Sprintf("no %s found for folder %q", ConfigFileName, folder)
		if err != nil {
			reason = fmt.Sprintf("searching for %s: %s", ConfigFileName, err)
		}
		file.log.AddForRange(parser.MsgConfigFileNotFound, reason, docast.EmptyRange)
		return file
	}
	return LoadFile(path)
}

// FindConfigPath searches upward from startDir for a configuration file.
// Returns "" when none exists.
func FindConfigPath(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	currentDir := absDir
	for {
		for _, name := range configFileNames {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

// LoadFile loads one configuration file and its extends chain.
func LoadFile(path string) *ConfigFile {
	return loadFile(path, make(map[string]bool), 0)
}

// loadFile loads path with the visited set threaded through the extends
// recursion. A path already in visited means the chain loops back on
// itself; exactly one cycle diagnostic is recorded at the point of
// re-entry.
func loadFile(path string, visited map[string]bool, depth int) *ConfigFile {
	file := &ConfigFile{log: parser.NewMessageLog()}

	abs, err := filepath.Abs(path)
	if err != nil {
		file.FilePath = path
		file.log.AddForRange(parser.MsgConfigFileNotFound,
			fmt.Sprintf("resolving %q: %s", path, err), docast.EmptyRange)
		return file
	}
	file.FilePath = abs

	if visited[abs] {
		file.log.AddForRange(parser.MsgConfigCyclicExtends,
			fmt.Sprintf("circular reference encountered for %q", abs), docast.EmptyRange)
		return file
	}
	visited[abs] = true
	defer delete(visited, abs)

	if depth > maxExtendsDepth {
		file.log.AddForRange(parser.MsgConfigUnresolvedExtends,
			fmt.Sprintf("extends chain exceeds %d levels at %q", maxExtendsDepth, abs),
			docast.EmptyRange)
		return file
	}

	// Unlike a discovery miss, a file referenced by path is expected to
	// exist: a read failure here is an error, so FileNotFound stays false.
	data, err := os.ReadFile(abs)
	if err != nil {
		file.log.AddForRange(parser.MsgConfigFileNotFound,
			fmt.Sprintf("reading %q: %s", abs, err), docast.EmptyRange)
		return file
	}

	var raw schema
	if err := unmarshalConfig(abs, data, &raw); err != nil {
		file.log.AddForRange(parser.MsgConfigInvalidJSON,
			fmt.Sprintf("parsing %q: %s", abs, err), docast.EmptyRange)
		return file
	}

	file.TSDocSchema = raw.Schema
	file.Extends = raw.Extends
	file.NoStandardTags = raw.NoStandardTags
	file.TagDefinitions = raw.TagDefinitions
	file.SupportForTags = raw.SupportForTags
	file.Synonyms = raw.Synonyms
	file.RemoveSynonyms = raw.RemoveSynonyms

	file.validate()

	for _, specifier := range raw.Extends {
		basePath, err := resolveExtends(filepath.Dir(abs), specifier)
		if err != nil {
			file.log.AddForRange(parser.MsgConfigUnresolvedExtends,
				fmt.Sprintf("unable to resolve extends %q: %s", specifier, err),
				docast.EmptyRange)
			continue
		}
		file.bases = append(file.bases, loadFile(basePath, visited, depth+1))
	}

	return file
}

// unmarshalConfig decodes data as YAML or strict JSON based on the file
// extension.
func unmarshalConfig(path string, data []byte, out *schema) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.DisallowUnknownFields()
		return dec.Decode(out)
	}
}

// validate checks the file's own tag names and syntax kinds, recording a
// diagnostic per problem. Invalid entries are skipped when flattening.
func (f *ConfigFile) validate() {
	for _, def := range f.TagDefinitions {
		if err := tags.ValidateTagName(def.TagName); err != nil {
			f.log.AddForRange(parser.MsgConfigInvalidTagName, err.Error(), docast.EmptyRange)
			continue
		}
		if _, ok := tags.ParseSyntaxKind(def.SyntaxKind); !ok {
			f.log.AddForRange(parser.MsgConfigInvalidTagName,
				fmt.Sprintf("tag %s has unknown syntax kind %q", def.TagName, def.SyntaxKind),
				docast.EmptyRange)
		}
	}
	for canonical, aliases := range f.Synonyms {
		if err := tags.ValidateTagName(canonical); err != nil {
			f.log.AddForRange(parser.MsgConfigInvalidTagName, err.Error(), docast.EmptyRange)
			continue
		}
		for _, alias := range aliases {
			if err := tags.ValidateTagName(alias); err != nil {
				f.log.AddForRange(parser.MsgConfigInvalidTagName, err.Error(), docast.EmptyRange)
			}
		}
	}
	for tag := range f.SupportForTags {
		if err := tags.ValidateTagName(tag); err != nil {
			f.log.AddForRange(parser.MsgConfigInvalidTagName, err.Error(), docast.EmptyRange)
		}
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
