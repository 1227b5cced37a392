package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// out is where command output goes; tests swap it for a buffer
var out io.Writer = os.Stdout

// printLine writes one status line, dropping colors when NO_COLOR is set
func printLine(color, symbol, format string, a ...interface{}) {
	line := fmt.Sprintf(symbol+" "+format, a...)
	if os.Getenv("NO_COLOR") != "" {
		fmt.Fprintln(out, line)
		return
	}
	fmt.Fprintln(out, color+line+colorReset)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintln(out)
	printLine(colorYellow, "===", "%s ===", title)
}
