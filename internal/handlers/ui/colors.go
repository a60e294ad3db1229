package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like source
)

// Tally Specific Colors
var (
	CharColor  = color.New(color.FgYellow).SprintFunc()
	CountColor = color.New(color.FgWhite, color.Bold).SprintFunc()
	ZeroColor  = color.New(color.FgHiBlack).SprintFunc() // For absent characters (count 0)
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
