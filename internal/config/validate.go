package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateFFmpegPresence vérifie de manière statique que si un ResolvedPath est défini,
// le fichier existe et que le répertoire parent est accessible.
// Retourne warnings (non-fataux) et une erreur si c'est critique.
func (c *Config) ValidateFFmpegPresence() (warnings []string, err error) {
	if c == nil {
		return nil, fmt.Errorf("config nil")
	}

	c.ResolveFFmpegPath()

	p := strings.TrimSpace(c.FFmpeg.ResolvedPath)
	if p == "" {
		// pas de chemin configuré : recherche dans PATH au lancement
		if _, lerr := c.LookupFFmpeg(); lerr != nil {
			warnings = append(warnings, fmt.Sprintf("%s introuvable dans le PATH", c.FFmpeg.Name))
		}
		return warnings, nil
	}

	parent := filepath.Dir(p)
	if st, serr := os.Stat(parent); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("le dossier parent du chemin ffmpeg n'existe pas : %s", parent))
		} else {
			return warnings, fmt.Errorf("impossible d'accéder au dossier parent %s : %w", parent, serr)
		}
	} else if !st.IsDir() {
		return warnings, fmt.Errorf("le parent du chemin ffmpeg n'est pas un répertoire : %s", parent)
	}

	if info, serr := os.Stat(p); serr != nil {
		if os.IsNotExist(serr) {
			warnings = append(warnings, fmt.Sprintf("ffmpeg introuvable à l'emplacement configuré : %s", p))
			return warnings, nil
		}
		return warnings, fmt.Errorf("erreur lors du test du fichier %s : %w", p, serr)
	} else if info.IsDir() {
		return warnings, fmt.Errorf("le chemin configuré pour ffmpeg est un répertoire : %s", p)
	}

	return warnings, nil
}

// ValidateVelocity vérifie que chaque champ de min_speed_duration est <= au
// champ correspondant de max_speed_duration (le tirage se fait champ par champ).
func (c *Config) ValidateVelocity() error {
	lo, hi := c.Velocity.MinSpeedDuration, c.Velocity.MaxSpeedDuration
	if lo.Hour() > hi.Hour() || lo.Minute() > hi.Minute() || lo.Second() > hi.Second() {
		return fmt.Errorf("velocity: min_speed_duration (%s) dépasse max_speed_duration (%s) sur au moins un champ", lo, hi)
	}
	return nil
}
