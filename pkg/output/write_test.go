package output_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/output"
	"github.com/arthur-debert/pkgls/pkg/packagelist"
	"github.com/arthur-debert/pkgls/pkg/pkgset"
)

func TestWriteStdout(t *testing.T) {
	var buf bytes.Buffer

	err := output.Write(&buf, output.Destination{}, pkgset.Of("lsd", "bat"))

	require.NoError(t, err)
	assert.Equal(t, "bat\nlsd\n", buf.String())
}

func TestWriteStdoutEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.Destination{}, pkgset.Set{}))
	assert.Empty(t, buf.String())
}

func TestWriteFileFormats(t *testing.T) {
	names := pkgset.Of("bat", "broot", "lsd")

	for _, file := range []string{"out.txt", "out", "out.toml", "out.yaml", "out.yml", "out.json"} {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), file)
			var stdout bytes.Buffer

			require.NoError(t, output.Write(&stdout, output.Destination{Path: path}, names))
			assert.Empty(t, stdout.String(), "file output does not touch stdout")

			got, err := packagelist.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, names.Names(), got)
		})
	}
}

func TestWriteFormatOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.list")

	dest := output.Destination{Path: path, Format: packagelist.FormatJSON}
	require.NoError(t, output.Write(nil, dest, pkgset.Of("bat")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"packages": ["bat"]}`, string(data))
}

func TestWriteUnknownExtensionFallsBackToText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.csv")

	require.NoError(t, output.Write(nil, output.Destination{Path: path}, pkgset.Of("a", "b")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestWriteExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer\n"), 0644))

	err := output.Write(nil, output.Destination{Path: path}, pkgset.Of("bat"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputExists))

	require.NoError(t, output.Write(nil, output.Destination{Path: path, Force: true}, pkgset.Of("bat")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bat\n", string(data))
}

func TestWriteUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "packages.txt")

	err := output.Write(nil, output.Destination{Path: path}, pkgset.Of("bat"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputWrite))
}

func TestEncodeUnsupportedFormat(t *testing.T) {
	_, err := output.Encode(pkgset.Of("bat"), packagelist.Format("xml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputFormat))
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, packagelist.FormatText, output.Destination{}.ResolveFormat())
	assert.Equal(t, packagelist.FormatYAML, output.Destination{Path: "a.yml"}.ResolveFormat())
	assert.Equal(t, packagelist.FormatTOML, output.Destination{Format: packagelist.FormatTOML}.ResolveFormat())
}
