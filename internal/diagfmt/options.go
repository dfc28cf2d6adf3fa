package diagfmt

// ColorMode selects when ANSI color escapes are written, mirroring spec
// §4.3's "mode: auto/always/never; auto queries whether the output is a
// terminal".
type ColorMode uint8

const (
	// ColorAuto enables color only when the destination writer is a
	// terminal (checked via golang.org/x/term).
	ColorAuto ColorMode = iota
	// ColorAlways forces color on regardless of the destination.
	ColorAlways
	// ColorNever disables color regardless of the destination.
	ColorNever
)

// PathMode specifies how file paths are displayed in a rendered diagnostic.
type PathMode uint8

const (
	// PathModeAuto renders short paths as-is and reduces long absolute
	// paths to their basename.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	// PathModeRelative renders paths relative to the FileSet's base directory.
	PathModeRelative
	// PathModeBasename renders only the final path element.
	PathModeBasename
)

// PrettyOpts configures Pretty's rendering of a diagnostic context.
type PrettyOpts struct {
	// Color selects when ANSI escapes are emitted.
	Color ColorMode
	// Context is the number of source lines shown above and below the
	// primary span's line. 0 shows only the primary line.
	Context uint8
	// PathMode controls how a file's path is displayed.
	PathMode PathMode
}

// JSONOpts configures JSON's rendering of a diagnostic context.
type JSONOpts struct {
	// IncludePositions adds resolved line/column fields alongside the
	// raw byte offsets every location always carries.
	IncludePositions bool
	// PathMode controls how a file's path is displayed.
	PathMode PathMode
	// Max caps the number of diagnostics rendered; 0 means unlimited.
	Max int
}
