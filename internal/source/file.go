package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about how a file's content was obtained.
type FileFlags uint8

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content of a single source file. Content is immutable after
// construction; tokens slice it, they never copy it.
type File struct {
	Name    string
	Code    []byte
	LineIdx []uint32 // byte offsets of '\n', for line previews
	Flags   FileFlags
}

// NewFile builds a File from already-normalized bytes.
func NewFile(name string, code []byte, flags FileFlags) *File {
	return &File{
		Name:    name,
		Code:    code,
		LineIdx: buildLineIndex(code),
		Flags:   flags,
	}
}

// FromString builds a virtual file from an in-memory string.
func FromString(name, code string) *File {
	return NewFile(name, []byte(code), FileVirtual)
}

// Load reads a file from disk and normalizes CRLF/BOM.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	code, hadBOM := removeBOM(code)
	code, hadCRLF := normalizeCRLF(code)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return NewFile(path, code, flags), nil
}

// Len returns the content length, guarded against uint32 overflow.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Code))
	if err != nil {
		panic(fmt.Errorf("file content length overflow: %w", err))
	}
	return n
}

// Slice returns the exact source substring for a location.
func (f *File) Slice(loc Location) string {
	return string(f.Code[loc.Start.Index:loc.End.Index])
}

// Line returns the content of the given line (1-based), without the trailing
// newline. Out-of-range lines yield "".
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	lenIdx := uint32(len(f.LineIdx))
	lenContent := f.Len()

	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	end := lenContent
	if (lineNum - 1) < lenIdx {
		end = f.LineIdx[lineNum-1]
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Code[start:end])
}
