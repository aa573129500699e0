// Package output writes package lists to stdout or to a file in one of the
// packagelist formats.
package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/packagelist"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

// Destination says where a list goes. An empty Path means standard output.
type Destination struct {
	Path string
	// Force overwrites an existing file.
	Force bool
	// Format overrides the format inferred from Path.
	Format packagelist.Format
}

// IsStdout reports whether the destination is standard output.
func (d Destination) IsStdout() bool {
	return d.Path == ""
}

// ResolveFormat returns the explicit format or the one inferred from the
// path. Stdout defaults to text.
func (d Destination) ResolveFormat() packagelist.Format {
	if d.Format != "" {
		return d.Format
	}
	if d.IsStdout() {
		return packagelist.FormatText
	}

	format, known := packagelist.FormatFromPath(d.Path)
	if !known {
		logger := logging.GetLogger("output")
		logger.Warn().
			Str("path", d.Path).
			Msg("Unsupported output format, defaulting to plain text")
	}
	return format
}

// Encode renders names in format.
func Encode(names pkgset.Set, format packagelist.Format) ([]byte, error) {
	doc := packagelist.Document{Packages: names.Names()}

	switch format {
	case packagelist.FormatTOML:
		return toml.Marshal(doc)
	case packagelist.FormatYAML:
		return yaml.Marshal(doc)
	case packagelist.FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case packagelist.FormatText, "":
		if names.IsEmpty() {
			return nil, nil
		}
		return []byte(names.String() + "\n"), nil
	default:
		return nil, errors.Newf(errors.ErrOutputFormat, "unsupported output format '%s'", format)
	}
}

// Write renders names to dest. stdout receives the list when dest is
// standard output.
func Write(stdout io.Writer, dest Destination, names pkgset.Set) error {
	data, err := Encode(names, dest.ResolveFormat())
	if err != nil {
		return err
	}

	if dest.IsStdout() {
		_, err := io.Copy(stdout, bytes.NewReader(data))
		if err != nil {
			return errors.Wrap(err, errors.ErrOutputWrite, "unable to write to stdout")
		}
		return nil
	}

	return writeFile(dest, data)
}

func writeFile(dest Destination, data []byte) error {
	flags := os.O_WRONLY | os.O_CREATE
	if dest.Force {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}

	file, err := os.OpenFile(dest.Path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.Newf(errors.ErrOutputExists,
				"'%s' already exists, use --force to overwrite it", dest.Path).
				WithDetail("path", dest.Path)
		}
		return errors.Wrapf(err, errors.ErrOutputWrite, "unable to open '%s'", dest.Path).
			WithDetail("path", dest.Path)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, errors.ErrOutputWrite, "unable to write '%s'", dest.Path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrOutputWrite, "unable to write '%s'", dest.Path)
	}

	logger := logging.GetLogger("output")
	logger.Info().
		Str("path", dest.Path).
		Int("bytes", len(data)).
		Msg("Wrote package list")
	return nil
}
