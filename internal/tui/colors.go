package tui

// Color constants for the liftlog TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1D1A" // Dark teal
	ColorBorder         = "#33554D" // Muted green-grey

	// Text Colors
	ColorPrimaryText   = "#E8F2EE" // Primary text (exercise names, values)
	ColorSecondaryText = "#A7BDB6" // Secondary text - soft sage
	ColorDisabledText  = "#5E7269" // Disabled/muted text
	ColorPlaceholder   = "#A7BDB6" // Same as secondary
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, selected exercise, clock

	// State Colors
	ColorError   = "#EF4444" // Persistence failures, validation errors
	ColorSuccess = "#22C55E" // Saved confirmation, completed sets
	ColorWarning = "#F59E0B" // Coercion warnings, rest countdown
)
