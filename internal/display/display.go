// Package display renders the CLI's banner, status lines, and tables.
// It is a thin presentation layer over the core packages; nothing in
// here touches the filesystem.
package display

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Core output styles
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("213")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

const banner = `
  ::######::'######::'########:
  '##...::::##...::: ##.....::
  . ######:. ######: ######:::
  :.... ##::.... ##: ##...::::
  ::::: ##::::: ##:: ##:::::::
  ######::'######::: ##:::::::
  .....:::......::::..::::::::
`

// Banner prints the tool's logo.
func Banner() {
	fmt.Println(bannerStyle.Render(banner))
}

// Success prints a formatted success line.
func Success(format string, args ...interface{}) {
	fmt.Println(SuccessStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// Warning prints a formatted warning line.
func Warning(format string, args ...interface{}) {
	fmt.Println(WarningStyle.Render("! " + fmt.Sprintf(format, args...)))
}

// Error prints a formatted error line to stderr.
func Error(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// Info prints a formatted informational line.
func Info(format string, args ...interface{}) {
	fmt.Println(InfoStyle.Render(fmt.Sprintf(format, args...)))
}

// JoinOrDash joins values for a table cell, or returns "-" when there
// are none.
func JoinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

// Table renders a titled table with the shared border and header
// styles and prints it.
func Table(title string, headers []string, rows [][]string) {
	if title != "" {
		fmt.Println(Title.Render(title))
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("213"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Println(t)
}
