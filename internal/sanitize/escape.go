// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sanitize

import (
	"regexp"
	"strings"
)

// latexReplacer escapes characters with special meaning in LaTeX text mode.
// strings.Replacer scans once, so "$" inside "$<$" is never escaped again.
var latexReplacer = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`<`, `$<$`,
	`>`, `$>$`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
)

// boldPattern matches **text** spans, shortest first.
var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Escape neutralizes the LaTeX special characters & % $ # _ < > ~ ^ in s.
// Backslashes and braces pass through so that markup emitted by
// ConvertMarkup stays intact.
func Escape(s string) string {
	return latexReplacer.Replace(s)
}

// ConvertMarkup rewrites **text** as \textbf{text}. The inner text is left
// as is; Escape runs over the whole string afterwards.
func ConvertMarkup(s string) string {
	return boldPattern.ReplaceAllString(s, `\textbf{${1}}`)
}

// Text prepares a single string leaf: markup conversion first, then escaping.
func Text(s string) string {
	return Escape(ConvertMarkup(s))
}
