package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

func shouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func displayOptional(value *string) string {
	if value == nil {
		return "-"
	}
	return *value
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
