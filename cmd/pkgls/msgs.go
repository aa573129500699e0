package pkgls

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "List installed packages and install missing ones"
	MsgListShort       = "List installed packages or save them to a file"
	MsgInstallShort    = "Install packages from arguments or package lists"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"
	MsgVersionShort    = "Print version information"

	// Flag descriptions
	MsgFlagLog      = "Increase log level (-l error, -ll warn, -lll info, -llll debug)"
	MsgFlagQuiet    = "Silence logs and status messages"
	MsgFlagProgram  = "Package manager to use (pacman, apt, brew)"
	MsgFlagColor    = "Force colored output"
	MsgFlagNoColor  = "Disable colored output"
	MsgFlagInput    = "Package list file (repeatable)"
	MsgFlagExclude  = "Package list file with packages to leave out (repeatable)"
	MsgFlagForce    = "Overwrite the output file if it already exists"
	MsgFlagFormat   = "Output file format (txt, toml, yaml, json)"
	MsgFlagExplicit = "Mark installed packages as explicitly installed"

	// Status messages
	MsgVersionFormat  = "pkgls version %s\n  commit: %s\n  built:  %s\n"
	MsgMarkedExplicit = "Marked %d package(s) as explicitly installed"
	MsgManWritten     = "Wrote man pages to %s"

	// Error messages
	MsgErrForceNeedsOutput = "--force requires an output file"
	MsgErrInputConflict    = "packages can be given as arguments or with --input, not both"
	MsgErrNoPackages       = "no packages given, pass package names or --input files"
	MsgErrUnknownFormat    = "unknown output format '%s' (supported: txt, toml, yaml, json)"
	MsgErrExplicit         = "failed to mark packages as explicitly installed"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
