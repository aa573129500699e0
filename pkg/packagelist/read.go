// Package packagelist reads lists of package names from files and command
// line arguments.
//
// Text files hold one name per line. Lines starting with '#' are comments,
// a '#' later in a line starts a trailing comment, and blank lines are
// ignored. TOML, YAML and JSON files hold a "packages" array; YAML and JSON
// may also be a bare top-level array.
package packagelist

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
)

// ReadFile reads the package names in path, choosing the format from its
// extension. Names are returned in file order; see pkgset.Normalize.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "unable to read file '%s'", path).
			WithDetail("path", path)
	}

	format, known := FormatFromPath(path)
	if !known {
		logger := logging.GetLogger("packagelist")
		logger.Warn().
			Str("path", path).
			Msg("Unsupported input format, reading as plain text")
	}

	names, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputFormat, "unable to parse '%s' as %s", path, format).
			WithDetail("path", path)
	}
	return names, nil
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) ([]string, error) {
	switch format {
	case FormatTOML:
		var doc Document
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return clean(doc.Packages), nil
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	default:
		return parseText(data)
	}
}

func parseText(data []byte) ([]string, error) {
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}

func parseYAML(data []byte) ([]string, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var names []string
		if err := root.Decode(&names); err != nil {
			return nil, err
		}
		return clean(names), nil
	}

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return clean(doc.Packages), nil
}

func parseJSON(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var names []string
		if err := json.Unmarshal(trimmed, &names); err != nil {
			return nil, err
		}
		return clean(names), nil
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}
	return clean(doc.Packages), nil
}

// clean trims names from structured formats and drops empty entries.
func clean(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// FromFiles concatenates the names of every readable file. Unreadable or
// malformed files are logged and skipped; it fails only when none of the
// files could be read.
func FromFiles(paths []string) ([]string, error) {
	logger := logging.GetLogger("packagelist")
	if len(paths) == 0 {
		logger.Warn().Msg("No files received in input")
		return nil, errors.New(errors.ErrInputRead, "no input files given")
	}

	var names []string
	var firstErr error
	read := 0
	for _, path := range paths {
		fileNames, err := ReadFile(path)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Unable to read input file")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		read++
		names = append(names, fileNames...)
	}

	if read == 0 {
		return nil, firstErr
	}
	return names, nil
}

// FromArgs treats each argument naming an existing regular file as a list
// file and every other argument as a literal package name.
func FromArgs(args []string) ([]string, error) {
	logger := logging.GetLogger("packagelist")

	var names []string
	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
			fileNames, err := ReadFile(arg)
			if err != nil {
				return nil, err
			}
			logger.Debug().Str("path", arg).Int("packages", len(fileNames)).Msg("Read packages from argument file")
			names = append(names, fileNames...)
			continue
		}
		if arg = strings.TrimSpace(arg); arg != "" {
			names = append(names, arg)
		}
	}

	if len(names) == 0 {
		logger.Warn().Msg("No packages received in input")
	}
	return names, nil
}
