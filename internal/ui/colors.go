package ui

// The Color* functions return the escape code of the active theme for a
// role. They return the empty string when colors are disabled, so callers can
// interpolate them unconditionally.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

func ColorBold() string { return GetCurrentTheme().Bold }

func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorRed is used for errors and failed vectors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen is used for results and passing vectors.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow is used for warnings and command names in help output.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue is used for operation and vector names.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan is used for statistics.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta is used for durations.
func ColorMagenta() string { return GetCurrentTheme().Secondary }
