package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// statusKind classifies a status line for labeling and color.
type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
	ansiReset        = "\x1b[0m"
)

var statusLabels = map[statusKind]string{
	statusInfo:  "INFO",
	statusOK:    "OK",
	statusWarn:  "WARN",
	statusError: "ERROR",
}

var statusColors = map[statusKind]string{
	statusOK:    "\x1b[32m",
	statusWarn:  "\x1b[33m",
	statusError: "\x1b[31m",
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	var b strings.Builder
	b.WriteString(statusIndent)
	fmt.Fprintf(&b, "%-*s", statusLabelWidth, label+":")
	b.WriteString(" [")
	b.WriteString(statusLabels[kind])
	b.WriteString("]")
	if message != "" {
		b.WriteString(" ")
		b.WriteString(message)
	}
	if color, ok := statusColors[kind]; colorize && ok {
		return color + b.String() + ansiReset
	}
	return b.String()
}

// shouldColorize reports whether w is a terminal that can take ANSI colors.
func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
