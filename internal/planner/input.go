package planner

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadTimestampFile lit un fichier de timestamps (un par ligne).
func ReadTimestampFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ouverture du fichier de timestamps %s : %w", path, err)
	}
	defer f.Close()

	lines, err := ReadTimestamps(f)
	if err != nil {
		return nil, fmt.Errorf("lecture de %s : %w", path, err)
	}
	return lines, nil
}

// ReadTimestamps renvoie les lignes non vides, sans espaces autour.
// La validation du format est faite plus tard par timestamp.Parse.
func ReadTimestamps(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
