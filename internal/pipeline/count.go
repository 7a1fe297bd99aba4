package pipeline

import (
	"bufio"
	"fmt"
	"os"
)

// CountLines returns the number of lines in the file at path. It keeps no
// state between calls; failures to open or read the file are returned as
// errors since the file was just listed from the data directory and an
// unreadable file means something structural is wrong.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open data file %s: %w", path, err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines++
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read data file %s: %w", path, err)
	}
	return lines, nil
}
