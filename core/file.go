package core

import (
	"os"
)

// Load reads the file at path into a new buffer. A file ending in a newline
// yields a trailing empty line and an empty file yields a single empty line,
// per BufferFromString. A missing file is reported as-is so callers can
// distinguish it (via os.IsNotExist) from other I/O failures.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return BufferFromString(string(data)), nil
}

// Save writes the serialized buffer to path as raw UTF-8 bytes, overwriting
// any existing content.
func Save(path string, b *Buffer) error {
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
