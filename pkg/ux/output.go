// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package logging provides structured logging for Aleutian components.
//

// Package ux styles the explorer's terminal output.
//
// A Printer renders through lipgloss when its writer is a terminal and
// falls back to plain text otherwise, so piped output stays parseable.
package ux

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7")
	ColorTealPrimary = lipgloss.Color("#20B9B4")
	ColorTealDeep    = lipgloss.Color("#16858E")
	ColorSlate       = lipgloss.Color("#2C4A54")
	ColorWarning     = lipgloss.Color("#F4D03F")
	ColorError       = lipgloss.Color("#E74C3C")
)

// Icon is a status glyph.
type Icon string

const (
	IconSuccess Icon = "✓"
	IconWarning Icon = "⚠"
	IconError   Icon = "✗"
	IconBullet  Icon = "•"
)

// styles holds the lipgloss styles bound to one renderer.
type styles struct {
	title     lipgloss.Style
	highlight lipgloss.Style
	muted     lipgloss.Style
	success   lipgloss.Style
	warning   lipgloss.Style
	errorText lipgloss.Style
	label     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(ColorTealBright),
		highlight: r.NewStyle().Bold(true).Foreground(ColorTealPrimary),
		muted:     r.NewStyle().Foreground(ColorSlate),
		success:   r.NewStyle().Foreground(ColorTealBright),
		warning:   r.NewStyle().Foreground(ColorWarning),
		errorText: r.NewStyle().Foreground(ColorError),
		label:     r.NewStyle().Foreground(ColorTealDeep),
	}
}

// Printer writes styled lines to a writer.
//
// Thread Safety:
//
//	Not safe for concurrent use; a Printer belongs to one command run.
type Printer struct {
	w      io.Writer
	styled bool
	styles styles
}

// NewPrinter creates a Printer for w. Styling follows mode.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	p := &Printer{w: w, styled: mode.enabled(w)}
	if p.styled {
		p.styles = newStyles(lipgloss.NewRenderer(w))
	}
	return p
}

// Styled reports whether this printer emits styling.
func (p *Printer) Styled() bool {
	return p.styled
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Highlight returns s in the highlight style.
func (p *Printer) Highlight(s string) string { return p.render(p.styles.highlight, s) }

// Muted returns s in the muted style.
func (p *Printer) Muted(s string) string { return p.render(p.styles.muted, s) }

// Label returns s in the label style.
func (p *Printer) Label(s string) string { return p.render(p.styles.label, s) }

// Line writes a formatted line.
func (p *Printer) Line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

// Title writes a title line.
func (p *Printer) Title(text string) error {
	return p.Line("%s", p.render(p.styles.title, text))
}

// Success writes text as an outcome line. Styled output adds an icon.
func (p *Printer) Success(text string) error {
	if !p.styled {
		return p.Line("%s", text)
	}
	return p.Line("%s %s", p.styles.success.Render(string(IconSuccess)), p.styles.success.Render(text))
}

// Warning writes text as a negative outcome line. Styled output adds an icon.
func (p *Printer) Warning(text string) error {
	if !p.styled {
		return p.Line("%s", text)
	}
	return p.Line("%s %s", p.styles.warning.Render(string(IconWarning)), p.styles.warning.Render(text))
}

// Error writes text as an error line. Styled output adds an icon.
func (p *Printer) Error(text string) error {
	if !p.styled {
		return p.Line("%s", text)
	}
	return p.Line("%s %s", p.styles.errorText.Render(string(IconError)), p.styles.errorText.Render(text))
}
