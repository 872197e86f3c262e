// Package version exposes build information for the pairingcheck binary.
//
// Values are injected at build time:
//
//	-ldflags "-X pairingcheck/internal/version.version=v1.0.0 -X pairingcheck/internal/version.commit=abc123 -X pairingcheck/internal/version.buildTime=2025-01-01T00:00:00Z"
//
// When they are absent (go install, go run) the module version and VCS
// revision recorded by the Go toolchain are used instead.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"
)

//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	version   string
	commit    string
	buildTime string

	readBuildInfo = debug.ReadBuildInfo
)

// ApplicationName is the name of the application displayed in version output.
const ApplicationName = "PairingCheck CLI"

// Default values used when version information is not available.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

const (
	LabelVersion   = "Version"
	LabelCommit    = "Commit"
	LabelBuilt     = "Built"
	LabelGo        = "Go"
	fieldSeparator = ": "
	lineSeparator  = "\n"

	developmentSuffix = " (development build)"
)

// VersionInfo holds the resolved build information.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
	GoVersion string
}

// NewVersionInfo resolves build information, preferring ldflags values over
// the toolchain-embedded build info and falling back to defaults.
func NewVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := readBuildInfo(); ok {
		fillFromBuildInfo(info, bi)
	}

	if info.Version == "" {
		info.Version = DefaultVersion
	}
	if info.Commit == "" {
		info.Commit = DefaultCommit
	}
	if info.BuildTime == "" {
		info.BuildTime = DefaultBuildTime
	}
	return info
}

func fillFromBuildInfo(info *VersionInfo, bi *debug.BuildInfo) {
	if info.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if bi.GoVersion != "" {
		info.GoVersion = bi.GoVersion
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = setting.Value
			}
		}
	}
}

// FormatShort returns only the version number.
func (vi *VersionInfo) FormatShort() string {
	return vi.Version
}

// FormatFull returns a multi-line block with every field.
func (vi *VersionInfo) FormatFull() string {
	var builder strings.Builder

	builder.WriteString(ApplicationName)
	builder.WriteString(lineSeparator)
	for _, field := range [][2]string{
		{LabelVersion, vi.displayVersion()},
		{LabelCommit, vi.Commit},
		{LabelBuilt, vi.BuildTime},
		{LabelGo, vi.GoVersion},
	} {
		builder.WriteString(field[0])
		builder.WriteString(fieldSeparator)
		builder.WriteString(field[1])
		builder.WriteString(lineSeparator)
	}

	return builder.String()
}

// Write formats the version based on the short flag and writes to w.
func (vi *VersionInfo) Write(w io.Writer, short bool) error {
	var err error
	if short {
		_, err = fmt.Fprintln(w, vi.FormatShort())
	} else {
		_, err = fmt.Fprint(w, vi.FormatFull())
	}
	return err
}

// IsDevelopment reports whether this is an unversioned build.
func (vi *VersionInfo) IsDevelopment() bool {
	return vi.Version == DefaultVersion
}

func (vi *VersionInfo) displayVersion() string {
	if vi.IsDevelopment() {
		return vi.Version + developmentSuffix
	}
	return vi.Version
}

// GetVersion returns the current version information.
func GetVersion() *VersionInfo {
	return NewVersionInfo()
}

// SetBuildVars overrides the injected build variables. Used by tests.
func SetBuildVars(ver, com, bt string) {
	version = ver
	commit = com
	buildTime = bt
}

// ResetBuildVars clears the injected build variables. Used by tests.
func ResetBuildVars() {
	SetBuildVars("", "", "")
}
