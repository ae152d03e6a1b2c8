// SPDX-License-Identifier: MIT

package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the pad's lipgloss styles.
type Theme struct {
	Title  lipgloss.Style
	Prompt lipgloss.Style
	Reply  lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Reply:  lipgloss.NewStyle().PaddingLeft(2),
		Error:  lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Faint(true),
	}
}
