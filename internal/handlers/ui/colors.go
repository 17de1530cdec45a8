package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like log fields
)

// Command Specific Colors
var (
	CommandNameColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasNameColor   = color.New(color.FgYellow).SprintFunc()
	UsageColor       = color.New(color.FgWhite).SprintFunc()
)

// Directory Listing Colors
var (
	DirEntryColor     = color.New(color.FgBlue, color.Bold).SprintFunc()
	SymlinkEntryColor = color.New(color.FgCyan).SprintFunc()
	OtherEntryColor   = color.New(color.FgYellow).SprintFunc()
)

// Log Level Colors
var (
	LogErrorColor = color.New(color.FgRed, color.Bold).SprintFunc()
	LogWarnColor  = color.New(color.FgYellow, color.Bold).SprintFunc()
	LogInfoColor  = color.New(color.FgGreen).SprintFunc()
	LogDebugColor = color.New(color.FgBlue).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
