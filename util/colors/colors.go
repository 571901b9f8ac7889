// Package colors implements raw ANSI color escapes.
//
// Unlike github.com/fatih/color the escapes here are always emitted, even if
// stdout is not a terminal. This is needed for masking: a masked hash is
// printed with the same foreground and background color and must never
// silently degrade to readable text.
package colors

import "fmt"

// Magenta is used for the program name and derived hashes.
const Magenta = 35

// backgroundOffset turns a foreground color code into its background code.
const backgroundOffset = 10

const resetEscape = "\033[0m"

// Mask renders msg with `color` as foreground and background color.
// The text stays invisible until it is selected or pasted somewhere.
func Mask(msg string, color int) string {
	return fmt.Sprintf("\033[0;%d;%dm", color, color+backgroundOffset) + msg + resetEscape
}
