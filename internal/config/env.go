package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/patrickprogramme/speedcut/internal/timestamp"
)

// Variables d'environnement reconnues. Elles s'appliquent par-dessus le
// fichier YAML ; les flags restent prioritaires.
const (
	EnvOutputDir  = "SPEEDCUT_OUTPUT_DIR"
	EnvRestTime   = "SPEEDCUT_REST_TIME"
	EnvFFmpegPath = "SPEEDCUT_FFMPEG_PATH"
	EnvSeed       = "SPEEDCUT_SEED"
)

// LoadDotEnv charge un fichier .env s'il existe. Les variables déjà définies
// dans l'environnement ne sont pas écrasées.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("lecture de %s impossible : %w", path, err)
	}
	return nil
}

// ApplyEnv applique les variables SPEEDCUT_* définies.
func (c *Config) ApplyEnv() error {
	if v, ok := lookupEnv(EnvOutputDir); ok {
		c.OutputDir = v
	}
	if v, ok := lookupEnv(EnvRestTime); ok {
		rest, err := timestamp.Parse(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRestTime, err)
		}
		c.RestTime = rest
	}
	if v, ok := lookupEnv(EnvFFmpegPath); ok {
		c.FFmpeg.Path = v
	}
	if v, ok := lookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Velocity.Seed = seed
	}
	c.normalizeConfig()
	return nil
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
