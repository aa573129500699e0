package manager

import (
	"os/exec"
	"runtime"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
)

// LookPathFunc resolves a program name in PATH.
type LookPathFunc func(file string) (string, error)

// Detect returns the first supported kind whose program is found by
// lookPath. A nil lookPath uses exec.LookPath.
func Detect(lookPath LookPathFunc) (Kind, error) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	logger := logging.GetLogger("manager.detect")
	for _, kind := range Kinds {
		path, err := lookPath(kind.Program())
		if err != nil {
			logger.Trace().Str("program", kind.Program()).Msg("Not found in PATH")
			continue
		}
		logger.Debug().Str("manager", kind.String()).Str("path", path).Msg("Detected package manager")
		return kind, nil
	}

	return "", errors.Newf(errors.ErrUndetectedManager,
		"unable to detect package manager for %s", runtime.GOOS).
		WithDetail("os", runtime.GOOS)
}
