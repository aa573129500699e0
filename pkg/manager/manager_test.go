package manager

import (
	"context"
	stderrors "errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pkgls/pkg/errors"
)

// recordingRunner returns canned output and records every command.
type recordingRunner struct {
	output   string
	err      error
	commands []Command
	runs     []Command
}

func (r *recordingRunner) Output(ctx context.Context, cmd Command) (string, error) {
	r.commands = append(r.commands, cmd)
	return r.output, r.err
}

func (r *recordingRunner) Run(ctx context.Context, cmd Command) error {
	r.runs = append(r.runs, cmd)
	return r.err
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input   string
		want    Kind
		wantErr bool
	}{
		{"pacman", Pacman, false},
		{"PACMAN", Pacman, false},
		{" apt ", Apt, false},
		{"Brew", Brew, false},
		{"yum", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedManager))
				assert.Contains(t, err.Error(), "pacman, apt, brew")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	runner := &recordingRunner{}
	for _, kind := range Kinds {
		m, err := New(kind, runner)
		require.NoError(t, err)
		assert.Equal(t, kind, m.Kind())
	}

	_, err := New(Kind("zypper"), runner)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedManager))
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		available map[string]bool
		want      Kind
		wantErr   bool
	}{
		{"pacman first", map[string]bool{"pacman": true, "brew": true}, Pacman, false},
		{"apt by apt-get", map[string]bool{"apt-get": true}, Apt, false},
		{"brew only", map[string]bool{"brew": true}, Brew, false},
		{"nothing", map[string]bool{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookPath := func(file string) (string, error) {
				if tt.available[file] {
					return "/usr/bin/" + file, nil
				}
				return "", exec.ErrNotFound
			}

			got, err := Detect(lookPath)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrUndetectedManager))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListInstalledCommands(t *testing.T) {
	tests := []struct {
		name    string
		manager func(r Runner) Manager
		want    Command
	}{
		{
			name:    "pacman",
			manager: func(r Runner) Manager { return &PacmanManager{Runner: r, Sudo: true} },
			want:    Command{Name: "pacman", Args: []string{"-Qeq"}},
		},
		{
			name:    "apt",
			manager: func(r Runner) Manager { return &AptManager{Runner: r, Sudo: true} },
			want:    Command{Name: "apt-mark", Args: []string{"showmanual"}},
		},
		{
			name:    "brew",
			manager: func(r Runner) Manager { return &BrewManager{Runner: r} },
			want:    Command{Name: "brew", Args: []string{"list", "-1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{output: "bat\n  lsd  \n\nbroot\n"}

			names, err := tt.manager(runner).ListInstalled(context.Background())

			require.NoError(t, err)
			assert.Equal(t, []string{"bat", "lsd", "broot"}, names)
			require.Len(t, runner.commands, 1)
			assert.Equal(t, tt.want, runner.commands[0])
		})
	}
}

func TestListInstalledMissingProgramIsAbsent(t *testing.T) {
	runner := &recordingRunner{
		err: commandError(Command{Name: "pacman"}, exec.ErrNotFound, ""),
	}

	names, err := (&PacmanManager{Runner: runner}).ListInstalled(context.Background())

	require.NoError(t, err)
	assert.Nil(t, names)
}

func TestListInstalledFailureIsManagerError(t *testing.T) {
	runner := &recordingRunner{
		err: commandError(Command{Name: "apt-mark", Args: []string{"showmanual"}}, stderrors.New("exit status 2"), "E: locked\n"),
	}

	_, err := (&AptManager{Runner: runner}).ListInstalled(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManager))
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "apt", details["manager"])
	assert.Equal(t, "apt-mark showmanual", details["command"])
	assert.Contains(t, err.Error(), "E: locked")
}

func TestInstallCommands(t *testing.T) {
	tests := []struct {
		name    string
		manager Manager
		want    Command
	}{
		{
			name:    "pacman non interactive",
			manager: &PacmanManager{Sudo: true},
			want:    Command{Name: "pacman", Args: []string{"-S", "--needed", "--noconfirm", "bat", "lsd"}, Sudo: true},
		},
		{
			name:    "pacman interactive as root",
			manager: &PacmanManager{Interactive: true},
			want:    Command{Name: "pacman", Args: []string{"-S", "--needed", "bat", "lsd"}},
		},
		{
			name:    "apt",
			manager: &AptManager{Sudo: true},
			want: Command{
				Name: "apt-get",
				Args: []string{"install", "-y", "bat", "lsd"},
				Sudo: true,
				Env:  []string{"DEBIAN_FRONTEND=noninteractive"},
			},
		},
		{
			name:    "brew",
			manager: &BrewManager{},
			want:    Command{Name: "brew", Args: []string{"install", "bat", "lsd"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordingRunner{}
			switch m := tt.manager.(type) {
			case *PacmanManager:
				m.Runner = runner
			case *AptManager:
				m.Runner = runner
			case *BrewManager:
				m.Runner = runner
			}

			require.NoError(t, tt.manager.Install(context.Background(), []string{"bat", "lsd"}))
			require.Len(t, runner.runs, 1)
			assert.Equal(t, tt.want, runner.runs[0])
		})
	}
}

func TestInstallFailureTagsManager(t *testing.T) {
	runner := &recordingRunner{
		err: commandError(Command{Name: "brew", Args: []string{"install", "lsd"}}, stderrors.New("exit status 1"), ""),
	}

	err := (&BrewManager{Runner: runner}).Install(context.Background(), []string{"lsd"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManager))
	assert.Equal(t, "brew", errors.GetErrorDetails(err)["manager"])
}

func TestMarkExplicit(t *testing.T) {
	runner := &recordingRunner{}
	var marker ExplicitMarker = &PacmanManager{Runner: runner, Sudo: true}

	require.NoError(t, marker.MarkExplicit(context.Background(), []string{"lsd"}))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, "sudo pacman -D --asexplicit lsd", runner.commands[0].String())

	runner = &recordingRunner{}
	marker = &AptManager{Runner: runner}
	require.NoError(t, marker.MarkExplicit(context.Background(), []string{"lsd"}))
	assert.Equal(t, "apt-mark manual lsd", runner.commands[0].String())
}

func TestCommandArgv(t *testing.T) {
	cmd := Command{Name: "apt-get", Args: []string{"install", "-y", "vim"}, Sudo: true}
	assert.Equal(t, []string{"sudo", "apt-get", "install", "-y", "vim"}, cmd.Argv())
	assert.Equal(t, "apt-get", Command{Name: "apt-get"}.String())
}

func TestExecRunnerOutput(t *testing.T) {
	if _, err := exec.LookPath("printf"); err != nil {
		t.Skip("printf not available")
	}

	runner := NewExecRunner()
	out, err := runner.Output(context.Background(), Command{Name: "printf", Args: []string{"bat\\nlsd\\n"}})

	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "lsd"}, splitLines(out))
}

func TestExecRunnerErrors(t *testing.T) {
	runner := NewExecRunner()

	_, err := runner.Output(context.Background(), Command{Name: "pkgls-definitely-not-a-program"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	if _, lookErr := exec.LookPath("false"); lookErr != nil {
		t.Skip("false not available")
	}
	_, err = runner.Output(context.Background(), Command{Name: "false"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManager))
	assert.Equal(t, 1, errors.GetErrorDetails(err)["exit_code"])
}
