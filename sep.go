/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package diaglog

import (
	"strings"
	"unicode/utf8"
)

// Separator defaults.
const (
	DefaultSeparatorWidth = 40
	DefaultSeparatorFill  = '-'
)

// sepConfig collects the separator options before rendering.
type sepConfig struct {
	insert string
	width  int
	fill   rune
}

// SepOption is a functional option for LineSeparator.
type SepOption func(*sepConfig)

// WithInsert centers the given label in the separator, padded by one space
// on each side. An empty label is the same as no label.
func WithInsert(s string) SepOption {
	return func(c *sepConfig) {
		c.insert = s
	}
}

// WithWidth sets the total separator width in characters. Non-positive
// widths fall back to the default.
func WithWidth(n int) SepOption {
	return func(c *sepConfig) {
		if n > 0 {
			c.width = n
		}
	}
}

// WithFill sets the fill character. The zero rune falls back to the default.
func WithFill(r rune) SepOption {
	return func(c *sepConfig) {
		if r != 0 {
			c.fill = r
		}
	}
}

// LineSeparator writes a separator line.
//
// With no options it is DefaultSeparatorWidth fill characters. With an
// insert, the label is centered between fill runs with one-space margins;
// when the free space is odd the extra character goes to the right. A label
// that does not fit the width is written verbatim, never truncated.
func (l *Logger) LineSeparator(opts ...SepOption) {
	l.write(separatorLine(opts...))
}

func separatorLine(opts ...SepOption) string {
	cfg := sepConfig{width: DefaultSeparatorWidth, fill: DefaultSeparatorFill}
	for _, opt := range opts {
		opt(&cfg)
	}

	fill := string(cfg.fill)
	if cfg.insert == "" {
		return strings.Repeat(fill, cfg.width)
	}

	// Two characters of the width are reserved for the margin spaces.
	rem := cfg.width - utf8.RuneCountInString(cfg.insert) - 2
	if rem < 0 {
		return cfg.insert
	}
	left := rem / 2
	right := rem - left
	return strings.Repeat(fill, left) + " " + cfg.insert + " " + strings.Repeat(fill, right)
}
