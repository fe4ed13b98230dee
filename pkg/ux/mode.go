// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for Aleutian components.
//

package ux

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode controls whether terminal output is styled.
type ColorMode string

const (
	// ColorAuto styles output only when writing to a terminal and NO_COLOR
	// is unset.
	ColorAuto ColorMode = "auto"

	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"

	// ColorNever writes plain text suitable for scripting.
	ColorNever ColorMode = "never"
)

// ErrUnknownColorMode is returned by ParseColorMode for unrecognized names.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ParseColorMode converts a flag value to a ColorMode. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "on":
		return ColorAlways, nil
	case "never", "off", "plain":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrUnknownColorMode, s)
	}
}

// enabled reports whether output to w should be styled under mode.
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
