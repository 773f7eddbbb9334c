package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/patrickprogramme/speedcut/internal/app"
	"github.com/patrickprogramme/speedcut/internal/assets"
	"github.com/patrickprogramme/speedcut/internal/bootstrap"
	"github.com/patrickprogramme/speedcut/internal/config"
	"github.com/patrickprogramme/speedcut/internal/ui"
)

const defaultConfigName = "speedcut.yaml"

func main() {
	flags := parseFlags()

	// déterminer exePath/binDir
	binDir := "."
	exePath, err := os.Executable()
	if err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté de l'exécutable
	if flags.ConfigPath == defaultConfigName || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, defaultConfigName)
	}

	created, err := bootstrap.EnsureConfigPresent(flags.ConfigPath, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	} else if created {
		fmt.Printf("Configuration par défaut créée : %s\n", flags.ConfigPath)
	}

	// un .env à côté de l'exécutable peut compléter l'environnement
	if err := config.LoadDotEnv(filepath.Join(binDir, ".env")); err != nil {
		log.Printf("warning: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("config env: %v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM (ffmpeg en cours est tué)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		tui.PrintError(ctx, err.Error())
		stop()
		log.Fatalf("app run: %v", err)
	}
}

func parseFlags() *app.CLIFlags {
	f := &app.CLIFlags{}
	flag.StringVar(&f.ConfigPath, "config", defaultConfigName, "chemin du fichier de configuration")
	flag.StringVar(&f.Input, "input", "", "vidéo source à découper (obligatoire)")
	flag.StringVar(&f.OutDir, "out", "", "dossier de sortie (remplace output_dir)")
	flag.StringVar(&f.Rest, "rest", "", "durée de repos au format hh:mm:ss (remplace rest_time)")
	flag.BoolVar(&f.DryRun, "dry-run", false, "affiche les commandes sans lancer ffmpeg")
	flag.BoolVar(&f.Copy, "copy", false, "copie les commandes dans le presse-papier")
	flag.StringVar(&f.FFmpegPath, "ffmpeg-path", "", "chemin vers l'exécutable ffmpeg ou son dossier")
	flag.Uint64Var(&f.Seed, "seed", 0, "graine du tirage des vélocités (0 = aléatoire)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <fichier-timestamps>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	f.TimestampsFile = flag.Arg(0)
	return f
}
