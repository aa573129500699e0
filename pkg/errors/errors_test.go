package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/pkgls/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "undetected_manager",
			code:    errors.ErrUndetectedManager,
			message: "unable to detect package manager for linux",
			wantStr: "[UNDETECTED_MANAGER] unable to detect package manager for linux",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "no packages given",
			wantStr: "[INVALID_INPUT] no packages given",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnsupportedManager, "unsupported package manager '%s'", "yum")
	if err.Message != "unsupported package manager 'yum'" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 1")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrManager, "pacman install failed")

		if err.Code != errors.ErrManager {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrManager)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[MANAGER] pacman install failed: exit status 1"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrManager, "pacman install failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrInputRead, "unable to read file '%s'", "pkgs.txt")
		if err.Message != "unable to read file 'pkgs.txt'" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrManager, "install failed").
		WithDetail("manager", "apt").
		WithDetail("exit_code", 100)

	if err.Details["manager"] != "apt" {
		t.Errorf("WithDetail() manager = %v", err.Details["manager"])
	}
	if err.Details["exit_code"] != 100 {
		t.Errorf("WithDetail() exit_code = %v", err.Details["exit_code"])
	}
}

func TestPackagesNotFound(t *testing.T) {
	err := errors.PackagesNotFound("pacman")

	if !errors.IsErrorCode(err, errors.ErrPackagesNotFound) {
		t.Fatalf("PackagesNotFound() code = %v", err.Code)
	}
	if got := errors.GetErrorDetails(err)["manager"]; got != "pacman" {
		t.Errorf("PackagesNotFound() manager detail = %v", got)
	}
	if got := err.Error(); got != "[PACKAGES_NOT_FOUND] packages were not found for pacman" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrManager, "error 1")
	err2 := errors.New(errors.ErrManager, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with PkglsError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrOutputExists, "exists"),
			code:     errors.ErrOutputExists,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrOutputExists, "exists"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrInputRead, "denied"),
			code:     errors.ErrInputRead,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	managerErr := errors.Wrap(rootCause, errors.ErrManager, "pacman -Qeq failed")
	refreshErr := errors.Wrap(managerErr, errors.ErrPackagesNotFound, "refresh failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(refreshErr, errors.ErrPackagesNotFound) {
			t.Error("Top level should have ErrPackagesNotFound code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var pkgErr *errors.PkglsError
		if stderrors.As(refreshErr.Unwrap(), &pkgErr) {
			if !errors.IsErrorCode(pkgErr, errors.ErrManager) {
				t.Error("Middle error should have ErrManager code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(refreshErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
