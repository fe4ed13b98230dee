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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"ALWAYS", ColorAlways},
		{"on", ColorAlways},
		{"never", ColorNever},
		{" plain ", ColorNever},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if err != nil {
			t.Errorf("ParseColorMode(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseColorMode("rainbow"); !errors.Is(err, ErrUnknownColorMode) {
		t.Errorf("expected ErrUnknownColorMode, got %v", err)
	}
}

func TestPrinter_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorAuto)

	if p.Styled() {
		t.Fatal("expected plain output for a buffer")
	}
	_ = p.Title("Network")
	_ = p.Success("Path found")
	_ = p.Warning("No path")
	_ = p.Error("Failed")
	_ = p.Line("%s → %s", p.Highlight("A"), p.Muted("B"))

	want := "Network\nPath found\nNo path\nFailed\nA → B\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_NeverIgnoresTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorNever)
	if p.Styled() {
		t.Error("ColorNever must not style")
	}
	if got := p.Label("x"); got != "x" {
		t.Errorf("Label = %q, want plain", got)
	}
}

func TestPrinter_AlwaysAddsIcons(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, ColorAlways)
	if !p.Styled() {
		t.Fatal("ColorAlways must style")
	}

	_ = p.Success("Path found")
	_ = p.Warning("No path")

	out := buf.String()
	for _, want := range []string{"Path found", "No path", string(IconSuccess), string(IconWarning)} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestColorMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	if NewPrinter(&buf, ColorAuto).Styled() {
		t.Error("NO_COLOR must disable auto styling")
	}
	if !NewPrinter(&buf, ColorAlways).Styled() {
		t.Error("ColorAlways overrides NO_COLOR")
	}
}
