package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata discovered while loading a source file.
	FileFlags uint8
)

const (
	// FileVirtual marks a file that was added from memory (tests, stdin, generated).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose leading UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were normalized to LF.
	FileNormalizedCRLF
)

// File captures content and precomputed line metadata for a single source file.
// Content is immutable for the life of the compilation session that owns it.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of each '\n' in Content, ascending
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position within a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}
