package config

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickprogramme/speedcut/internal/assets"
	"github.com/patrickprogramme/speedcut/internal/fsutil"
	"github.com/patrickprogramme/speedcut/internal/timestamp"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Chemins
	OutputDir string `yaml:"output_dir"`

	// Durée du segment de repos au début de chaque paire
	RestTime timestamp.Timestamp `yaml:"rest_time"`

	// Tirage de la vélocité
	Velocity struct {
		MinSpeedDuration timestamp.Timestamp `yaml:"min_speed_duration"`
		MaxSpeedDuration timestamp.Timestamp `yaml:"max_speed_duration"`
		// 0 => graine aléatoire
		Seed uint64 `yaml:"seed"`
	} `yaml:"velocity"`

	// ffmpeg
	FFmpeg struct {
		Name string `yaml:"name"`
		Path string `yaml:"path"`

		// ResolvedPath contient le chemin effectif vers l'exécutable (vide => PATH)
		ResolvedPath string `yaml:"-"`
	} `yaml:"ffmpeg"`

	// Affiche les commandes sans lancer ffmpeg
	DryRun bool `yaml:"dry_run"`

	// Copie les commandes dans le presse-papier à la fin
	CopyCommands bool `yaml:"copy_commands"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est incomplet)
func defaultConfig() *Config {
	c := &Config{}

	c.OutputDir = "."
	c.RestTime = timestamp.MustParse("00:00:05")

	c.Velocity.MinSpeedDuration = timestamp.MustParse("00:00:10")
	c.Velocity.MaxSpeedDuration = timestamp.MustParse("00:00:30")
	c.Velocity.Seed = 0

	c.FFmpeg.Name = "ffmpeg"
	c.FFmpeg.Path = ""

	c.DryRun = false
	c.CopyCommands = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Default renvoie la configuration par défaut, normalisée, sans fichier associé.
func Default() *Config {
	c := defaultConfig()
	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "speedcut.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// les champs absents conservent les valeurs par défaut
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	return cfg, nil
}

// Path renvoie le fichier d'où la config a été chargée.
func (c *Config) Path() string {
	return c.configFilePath
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("échec mkdir pour la configuration %s : %w", filepath.Dir(dstPath), err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	c.OutputDir = filepath.Clean(c.OutputDir)

	c.ResolveFFmpegPath()
}

// ResolveFFmpegPath normalise le nom et résout le chemin vers l'exécutable.
// Appeler après avoir modifié cfg.FFmpeg.Name ou cfg.FFmpeg.Path.
func (c *Config) ResolveFFmpegPath() {
	if c == nil {
		return
	}

	c.FFmpeg.Name = strings.TrimSpace(c.FFmpeg.Name)
	if c.FFmpeg.Name == "" {
		c.FFmpeg.Name = "ffmpeg"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.FFmpeg.Name), ".exe") {
		c.FFmpeg.Name = c.FFmpeg.Name + ".exe"
	}

	// sans chemin configuré, ffmpeg est cherché dans le PATH au lancement
	exeName := c.FFmpeg.Name
	cfgPath := strings.TrimSpace(c.FFmpeg.Path)
	if cfgPath == "" {
		c.FFmpeg.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.FFmpeg.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.FFmpeg.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}

// LookupFFmpeg renvoie le chemin qui sera exécuté : ResolvedPath, ou le résultat
// de la recherche dans PATH.
func (c *Config) LookupFFmpeg() (string, error) {
	if c.FFmpeg.ResolvedPath != "" {
		return c.FFmpeg.ResolvedPath, nil
	}
	return exec.LookPath(c.FFmpeg.Name)
}
