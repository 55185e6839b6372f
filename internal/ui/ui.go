// Package ui holds the terminal presentation shared by the pathname commands.
package ui

import (
	"io"
	"os"
	"regexp"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/cli"
)

const ansiEscapeStr = "[\u001B\u009B][[\\]()#;?]*(?:(?:(?:[a-zA-Z\\d]*(?:;[a-zA-Z\\d]*)*)?\u0007)|(?:(?:\\d{1,4}(?:;\\d{0,4})*)?[\\dA-PRZcf-ntqry=><~]))"

// IsTTY is true when stdout appears to be a tty
var IsTTY = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// IsCI is true when we appear to be running in a non-interactive context.
var IsCI = !IsTTY || os.Getenv("CI") != "" || os.Getenv("BUILD_NUMBER") != ""

var gray = color.New(color.Faint)
var bold = color.New(color.Bold)

// ErrorPrefix is printed in front of failures.
var ErrorPrefix = color.New(color.Bold, color.FgRed, color.ReverseVideo).Sprint(" ERROR ")

// WarningPrefix is printed in front of warnings.
var WarningPrefix = color.New(color.Bold, color.FgYellow, color.ReverseVideo).Sprint(" WARNING ")

// InvalidMarker flags a pathname that failed the NUL check.
var InvalidMarker = color.New(color.Bold, color.FgRed).Sprint("invalid")

var ansiRegex = regexp.MustCompile(ansiEscapeStr)

// Dim prints out dimmed text
func Dim(str string) string {
	return gray.Sprint(str)
}

// Bold prints out bold text
func Bold(str string) string {
	return bold.Sprint(str)
}

// Warn formats a warning line
func Warn(str string) string {
	return WarningPrefix + color.YellowString(" %v", str)
}

// Error formats an error line
func Error(str string) string {
	return ErrorPrefix + color.RedString(" %v", str)
}

type stripAnsiWriter struct {
	wrappedWriter io.Writer
}

func (into *stripAnsiWriter) Write(p []byte) (int, error) {
	n, err := into.wrappedWriter.Write(ansiRegex.ReplaceAll(p, []byte{}))
	if err != nil {
		return n, err
	}
	// Report the caller's byte count; stripped escapes are not a short write.
	return len(p), nil
}

// ColorMode decides whether color escapes reach the terminal.
type ColorMode int

const (
	ColorModeUndefined ColorMode = iota + 1
	ColorModeSuppressed
	ColorModeForced
)

// GetColorModeFromEnv reads FORCE_COLOR: "0"/"false" suppresses color,
// "1".."3"/"true" forces it.
func GetColorModeFromEnv() ColorMode {
	switch forceColor := os.Getenv("FORCE_COLOR"); {
	case forceColor == "false" || forceColor == "0":
		return ColorModeSuppressed
	case forceColor == "true" || forceColor == "1" || forceColor == "2" || forceColor == "3":
		return ColorModeForced
	default:
		return ColorModeUndefined
	}
}

func applyColorMode(colorMode ColorMode) ColorMode {
	switch colorMode {
	case ColorModeForced:
		color.NoColor = false
	case ColorModeSuppressed:
		color.NoColor = true
	}
	// ColorModeUndefined keeps the default fatih/color picked from the TTY and NO_COLOR.
	if color.NoColor {
		return ColorModeSuppressed
	}
	return ColorModeForced
}

// Default returns the default colored ui
func Default() *cli.ColoredUi {
	return BuildColoredUi(GetColorModeFromEnv(), os.Stdout, os.Stderr)
}

// BuildColoredUi returns a ColoredUi writing to out and errOut.
func BuildColoredUi(colorMode ColorMode, out io.Writer, errOut io.Writer) *cli.ColoredUi {
	colorMode = applyColorMode(colorMode)

	if colorMode == ColorModeSuppressed {
		out = &stripAnsiWriter{wrappedWriter: out}
		errOut = &stripAnsiWriter{wrappedWriter: errOut}
	}

	return &cli.ColoredUi{
		Ui: &cli.BasicUi{
			Reader:      os.Stdin,
			Writer:      out,
			ErrorWriter: errOut,
		},
		OutputColor: cli.UiColorNone,
		InfoColor:   cli.UiColorNone,
		WarnColor:   cli.UiColor{Code: int(color.FgYellow), Bold: false},
		ErrorColor:  cli.UiColorRed,
	}
}
