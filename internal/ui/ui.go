// Package ui renders operator-facing notices and summaries.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#22c55e")
	colorYellow = lipgloss.Color("#eab308")
	colorRed    = lipgloss.Color("#ef4444")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// Title prints a bold headline.
func Title(s string) {
	fmt.Println(titleStyle.Render(s))
}

// Noticef prints an attention-grabbing but non-fatal notice.
func Noticef(format string, v ...interface{}) {
	fmt.Println(noticeStyle.Render(fmt.Sprintf(format, v...)))
}

// Successf prints a success message.
func Successf(format string, v ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, v...)))
}

// Errorf prints a failure message.
func Errorf(format string, v ...interface{}) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, v...)))
}
