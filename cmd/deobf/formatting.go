package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true)
	coordinateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	arrowStyle      = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// styledOutput reports whether stdout is a terminal worth styling
func styledOutput() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func renderHeader(s string) string {
	if !styledOutput() {
		return s
	}
	return headerStyle.Render(s)
}

func renderCoordinate(s string) string {
	if !styledOutput() {
		return s
	}
	return coordinateStyle.Render(s)
}

func renderArrow() string {
	if !styledOutput() {
		return "->"
	}
	return arrowStyle.Render("->")
}

func renderError(err error) string {
	msg := "Error: " + err.Error()
	if !styledOutput() {
		return msg
	}
	return errorStyle.Render(msg)
}
