package ffmpeg

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickprogramme/speedcut/internal/config"
)

const defaultVersionTimeout = 5 * time.Second

// InitFFmpeg initialise le client, vérifie le binaire et récupère la version.
// Retourne le client (implémentant Interface) et la version.
func InitFFmpeg(ctx context.Context, cfg *config.Config) (Interface, string, error) {
	ff := NewFFmpeg(cfg.FFmpeg.Name, cfg.FFmpeg.ResolvedPath)

	// vérifier la présence du binaire
	if err := ff.CheckBinary(); err != nil {
		return nil, "", fmt.Errorf("ffmpeg introuvable : %w", err)
	}

	// récupérer la version (avec timeout)
	vctx, cancel := context.WithTimeout(ctx, defaultVersionTimeout)
	defer cancel()
	version, err := ff.GetVersion(vctx)
	if err != nil {
		return ff, "", fmt.Errorf("échec récupération version ffmpeg : %w", err)
	}

	return ff, version, nil
}
