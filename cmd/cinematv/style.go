package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#3B82F6")
	faint  = lipgloss.Color("#64748B")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	idStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4"))
	metaStyle     = lipgloss.NewStyle().Foreground(faint)
	ratingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5C518"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	synopsisStyle = lipgloss.NewStyle().PaddingLeft(2)
)

// synopsisWidth is the wrap column for synopsis text in terminal output.
const synopsisWidth = 72
