package stderr

import (
	"bufio"
	"io"
	"strings"
)

const bufferSize = 100

// forward sends each non-blank line of r to out, dropping lines when out is
// full, and closes out at EOF.
func forward(r io.Reader, out chan<- string) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case out <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}
