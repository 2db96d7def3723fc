// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output. Tuned for dark terminal backgrounds.
const (
	// ColorPrimary is purple, used for titles and target names.
	ColorPrimary = lipgloss.Color("#7C3AED")
	// ColorMuted is gray, used for subtitles and placeholders.
	ColorMuted = lipgloss.Color("#6B7280")
	// ColorSuccess is green.
	ColorSuccess = lipgloss.Color("#10B981")
	// ColorError is red.
	ColorError = lipgloss.Color("#EF4444")
	// ColorWarning is amber, used for unresolved targets and warnings.
	ColorWarning = lipgloss.Color("#F59E0B")
	// ColorHighlight is blue, used for commands, paths and keys.
	ColorHighlight = lipgloss.Color("#3B82F6")
	// ColorVerbose is light gray, used for secondary details.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for primary headers and section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// SuccessStyle is for success messages and positive indicators.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle is for error messages and failure indicators.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	// WarningStyle is for warning messages and caution indicators.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// CmdStyle is for command lines, paths and config keys.
	CmdStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight)

	// VerboseStyle is for supplementary information such as versions and branches.
	VerboseStyle = lipgloss.NewStyle().
			Foreground(ColorVerbose)

	// targetStyle renders a resolved build target.
	targetStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// unknownTargetStyle renders an installation without a target.
	unknownTargetStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(ColorWarning)

	// installPathStyle renders the path heading of an installation block.
	installPathStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorHighlight)

	// detailLabelStyle renders the labels below an installation path.
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Width(10)
)
