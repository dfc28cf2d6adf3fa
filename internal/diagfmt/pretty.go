package diagfmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"kermlc/internal/diag"
	"kermlc/internal/source"
)

const tabWidth = 8

// isTerminal reports whether w is a terminal, for ColorAuto.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal(w)
	}
}

// foldWidth normalizes fullwidth/halfwidth forms to their canonical form
// ahead of go-runewidth, so a fullwidth Latin letter in an unrestricted
// name measures the same column width as its halfwidth counterpart would.
func foldWidth(s string) string {
	out, _, err := transform.String(width.Fold, s)
	if err != nil {
		return s
	}
	return out
}

// graphemeWidth returns the printed column width of a single grapheme
// cluster (already folded through foldWidth), never less than 1 for a
// non-empty, non-tab cluster.
func graphemeWidth(g string) int {
	w := runewidth.StringWidth(foldWidth(g))
	if w <= 0 {
		return 1
	}
	return w
}

// visualColumn converts a 1-based byte column within line into a 1-based
// printed terminal column: tabs step to the next tabWidth stop, every
// other grapheme cluster contributes graphemeWidth(g) columns. Clusters
// are found with grapheme segmentation so a combining mark or wide East
// Asian character in source text never throws off caret alignment.
func visualColumn(line string, byteCol uint32) int {
	if byteCol <= 1 {
		return 1
	}
	target := int(byteCol) - 1
	visual := 0
	bytePos := 0
	seg := graphemes.FromString(line)
	for seg.Next() {
		if bytePos >= target {
			break
		}
		g := seg.Value()
		if g == "\t" {
			visual = (visual/tabWidth + 1) * tabWidth
		} else {
			visual += graphemeWidth(g)
		}
		bytePos += len(g)
	}
	return visual + 1
}

// buildIndent returns the text preceding a caret row's underline: gutter
// padding followed by a copy of line up to byteCol, with tabs copied
// verbatim (spec §4.3's rendering-detail floor) and every other grapheme
// replaced by spaces of the same printed width.
func buildIndent(gutterWidth int, line string, byteCol uint32) string {
	var b strings.Builder
	for range gutterWidth {
		b.WriteByte(' ')
	}
	target := int(byteCol) - 1
	bytePos := 0
	seg := graphemes.FromString(line)
	for seg.Next() {
		if bytePos >= target {
			break
		}
		g := seg.Value()
		if g == "\t" {
			b.WriteByte('\t')
		} else {
			for range graphemeWidth(g) {
				b.WriteByte(' ')
			}
		}
		bytePos += len(g)
	}
	return b.String()
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// Pretty renders ctx's diagnostics in emission order per spec §6's
// rendered-line format: a header, an optional source window with a caret
// underline, an optional help line, an optional suggestion line, then
// every attached note rendered the same way, followed by a blank line.
func Pretty(w io.Writer, ctx *diag.Context, fs *source.FileSet, opts PrettyOpts) {
	colorOn := colorEnabled(opts.Color, w)
	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !colorOn

	for _, d := range ctx.Items() {
		renderHeader(w, fs, opts, d.Severity, d.Code.String(), d.Primary, d.Message)
		renderWindow(w, fs, opts, d.Severity, d.Primary)

		if d.Help != "" {
			fmt.Fprintf(w, "   = help: %s\n", d.Help) //nolint:errcheck
		}
		if len(d.Edits) > 0 {
			fmt.Fprintf(w, "   = suggestion: replace with '%s'\n", d.Edits[0].Replacement) //nolint:errcheck
		}
		for _, note := range d.Notes {
			renderHeader(w, fs, opts, diag.SevNote, "", note.Span, note.Msg)
			renderWindow(w, fs, opts, diag.SevNote, note.Span)
		}

		fmt.Fprintln(w) //nolint:errcheck
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	case diag.SevNote:
		return color.New(color.FgCyan, color.Bold)
	default: // SevError, SevFatal
		return color.New(color.FgRed, color.Bold)
	}
}

func renderHeader(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, code string, sp source.Span, msg string) {
	f := fs.Get(sp.File)
	path := formatPath(f, fs, opts.PathMode)
	start, _ := fs.Resolve(sp)

	sevStr := severityColor(sev).Sprint(sev.String())
	if code == "" {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, start.Line, start.Col, sevStr, msg) //nolint:errcheck
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s[%s]: %s\n", path, start.Line, start.Col, sevStr, code, msg) //nolint:errcheck
}

func renderWindow(w io.Writer, fs *source.FileSet, opts PrettyOpts, sev diag.Severity, sp source.Span) {
	if sp == (source.Span{}) {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	context := uint32(opts.Context)
	var startLine uint32 = 1
	if start.Line > context {
		startLine = start.Line - context
	}
	totalLines := uint32(len(f.LineIdx)) + 1
	endLine := min(start.Line+context, totalLines)

	if startLine > 1 {
		fmt.Fprintln(w, "...") //nolint:errcheck
	}

	underline := severityColor(sev)
	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		lineText := f.GetLine(lineNum)
		lineNumStr := fmt.Sprintf("%3d", lineNum)
		gutter := lineNumStr + " | "
		fmt.Fprintln(w, gutter+lineText) //nolint:errcheck

		if lineNum != start.Line {
			continue
		}

		endCol := end.Col
		multiline := end.Line > start.Line
		if multiline {
			endCol = uint32(len(lineText)) + 1
		}

		visualStart := visualColumn(lineText, start.Col)
		visualEnd := visualColumn(lineText, endCol)
		lineVisualLen := visualColumn(lineText, uint32(len(lineText))+1)

		remaining := lineVisualLen - visualStart
		if remaining < 1 {
			remaining = 1
		}
		span := visualEnd - visualStart
		if span < 1 {
			span = 1
		}
		if span > remaining {
			span = remaining
		}

		indent := buildIndent(len(gutter), lineText, start.Col)
		var carets strings.Builder
		for i := range span {
			if i == span-1 {
				carets.WriteByte('^')
			} else {
				carets.WriteByte('~')
			}
		}
		fmt.Fprintln(w, indent+underline.Sprint(carets.String())) //nolint:errcheck
	}

	if endLine < totalLines {
		fmt.Fprintln(w, "...") //nolint:errcheck
	}
}

// PrintSummary renders spec §6's trailing summary line, omitted entirely
// when no error or warning was emitted.
func PrintSummary(w io.Writer, ctx *diag.Context) {
	errs := ctx.ErrorCount()
	warns := ctx.WarningCount()
	if errs == 0 && warns == 0 {
		return
	}
	fmt.Fprintf(w, "%d error(s) and %d warning(s) generated.\n", errs, warns) //nolint:errcheck
}
