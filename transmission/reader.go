package transmission

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single transmission line.
const maxLineSize = 1 << 20

// Read returns the transmissions in r, one per line. Surrounding whitespace
// is trimmed and blank lines are skipped.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transmissions: %w", err)
	}
	return lines, nil
}

// ReadFile returns the transmissions stored in the named file.
func ReadFile(name string) ([]string, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open transmissions file: %w", err)
	}
	defer file.Close()

	return Read(file)
}
