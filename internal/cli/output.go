package cli

import (
	"fmt"
	"os"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Println(msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("✓ %s\n", msg)
	} else {
		fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, msg)
	}
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("⚠ %s\n", msg)
	} else {
		fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, msg)
	}
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(os.Stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("→ %s\n", msg)
	} else {
		fmt.Printf("%s→%s %s\n", colorBlue, colorReset, msg)
	}
}

// printDetail prints a dimmed secondary line
func printDetail(msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Printf("  %s\n", msg)
	} else {
		fmt.Printf("  %s%s%s\n", colorGray, msg, colorReset)
	}
}
