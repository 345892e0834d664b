package palette

import (
	"bytes"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// ReadFile loads the whole palette file into memory, reading until EOF.
// The stat size is only a capacity hint; pipes and /proc files report 0.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open palette: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s: is a directory", path)
	}
	size, err := safecast.Conv[int](info.Size())
	if err != nil {
		return nil, fmt.Errorf("%s: file too large: %w", path, err)
	}

	var buf bytes.Buffer
	buf.Grow(size)
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return buf.Bytes(), nil
}
