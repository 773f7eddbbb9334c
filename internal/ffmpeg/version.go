package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// GetVersion exécute `ffmpeg -version` et retourne la première ligne de sa sortie.
// CombinedOutput capture stdout et stderr pour faciliter le diagnostic.
func (f *FFmpeg) GetVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, f.executable(), "-version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution ffmpeg -version : %w, output: %s", err, string(out))
	}
	first, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(first), nil
}
