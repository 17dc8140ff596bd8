// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var detectedMode TerminalMode

// ANSI sequences used by plain (non Bubble Tea) output
var (
	Green   string
	Info    string
	Warning string
	Error   string
	Reset   string
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and sets the ANSI sequences.
// NO_COLOR disables them.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		Green, Info, Warning, Error, Reset = "", "", "", "", ""
		return
	}
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetTerminalMode returns the detected terminal mode
func GetTerminalMode() TerminalMode {
	return detectedMode
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}
