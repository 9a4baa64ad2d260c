package configfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// resolveExtends maps an extends specifier to a file path. Specifiers
// beginning with "./", "../", or an absolute path are resolved against the
// referencing file's directory; anything else is a package specifier
// resolved through node_modules, the way JavaScript tooling resolves it.
func resolveExtends(baseDir, specifier string) (string, error) {
	if specifier == "" {
		return "", fmt.Errorf("empty extends specifier")
	}

	if filepath.IsAbs(specifier) {
		return ensureConfigFile(specifier)
	}
	if strings.HasPrefix(specifier, "./") || strings.HasPrefix(specifier, "../") {
		return ensureConfigFile(filepath.Join(baseDir, specifier))
	}
	return resolvePackage(baseDir, specifier)
}

// resolvePackage walks upward from baseDir looking for
// node_modules/<specifier>. A bare package name resolves to the package's
// tsdoc.json; a specifier with a path suffix resolves to that file.
func resolvePackage(baseDir, specifier string) (string, error) {
	dir, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(specifier))
		if path, err := ensureConfigFile(candidate); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("package %q not found in any node_modules", specifier)
		}
		dir = parent
	}
}

// ensureConfigFile accepts a path that may name either a configuration file
// or a directory containing one.
func ensureConfigFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return path, nil
	}
	for _, name := range configFileNames {
		candidate := filepath.Join(path, name)
		if fileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("directory %q contains no configuration file", path)
}
