package utils

import (
	"fmt"

	"github.com/fatih/color"
)

// CanColorize wraps a Sprint-style function such that it is only applied
// when colorized output is enabled. Colorization is controlled through
// color.NoColor, which the color package derives from the environment
// (NO_COLOR, non-TTY output) and which callers may override.
func CanColorize(f func(...interface{}) string) func(...interface{}) string {
	if color.NoColor {
		return fmt.Sprint
	}
	return f
}
