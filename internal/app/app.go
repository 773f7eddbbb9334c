package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/patrickprogramme/speedcut/internal/clipboard"
	"github.com/patrickprogramme/speedcut/internal/config"
	"github.com/patrickprogramme/speedcut/internal/ffmpeg"
	"github.com/patrickprogramme/speedcut/internal/fsutil"
	"github.com/patrickprogramme/speedcut/internal/planner"
	"github.com/patrickprogramme/speedcut/internal/timestamp"
	"github.com/patrickprogramme/speedcut/internal/ui"
)

var ErrMissingInput = errors.New("aucune vidéo source : utiliser -input")

// CLIFlags contient les information venant des flags de l'app
type CLIFlags struct {
	ConfigPath     string
	TimestampsFile string
	Input          string
	OutDir         string
	Rest           string
	DryRun         bool
	Copy           bool
	FFmpegPath     string
	Seed           uint64
}

// App orchestre les différentes dépendances (UI, ffmpeg, FS...)
type App struct {
	cfg   *config.Config
	ui    ui.Interface
	flags *CLIFlags

	ff   ffmpeg.Interface // initialisé dans Run, sauf en dry-run
	rand planner.Rand     // initialisé dans Run à partir de la graine

	copyLines func([]string) error
	commands  []string
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	if flags == nil {
		flags = &CLIFlags{}
	}
	return &App{
		cfg:       cfg,
		ui:        uiClient,
		flags:     flags,
		copyLines: clipboard.CopyLines,
	}
}

// Run exécute le flux principal : lecture des timestamps, initialisation de
// ffmpeg, découpage puis copie éventuelle des commandes.
func (a *App) Run(ctx context.Context) error {
	if err := a.applyFlags(); err != nil {
		return err
	}
	if a.flags.Input == "" {
		return ErrMissingInput
	}
	if err := a.cfg.ValidateVelocity(); err != nil {
		return err
	}

	if path := a.cfg.Path(); path != "" {
		a.ui.PrintInfo(ctx, fmt.Sprintf("configuration : %s", path))
	}

	timestamps, err := planner.ReadTimestampFile(a.flags.TimestampsFile)
	if err != nil {
		return err
	}
	if len(timestamps) < 2 {
		a.ui.PrintWarning(ctx, fmt.Sprintf("%d timestamp(s) dans %s : aucune paire à découper", len(timestamps), a.flags.TimestampsFile))
		return nil
	}

	if !a.cfg.DryRun && a.ff == nil {
		warnings, err := a.cfg.ValidateFFmpegPresence()
		for _, w := range warnings {
			a.ui.PrintWarning(ctx, w)
		}
		if err != nil {
			return fmt.Errorf("ffmpeg config: %w", err)
		}
		ff, version, err := ffmpeg.InitFFmpeg(ctx, a.cfg)
		if err != nil {
			return fmt.Errorf("ffmpeg init: %w", err)
		}
		a.ff = ff
		a.ui.PrintInfo(ctx, version)
	}

	if err := fsutil.EnsureDir(a.cfg.OutputDir); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	if a.rand == nil {
		a.rand = newRand(a.cfg.Velocity.Seed)
	}

	p := planner.New(planner.Options{
		RestTime: a.cfg.RestTime,
		Input:    a.flags.Input,
		OutDir:   a.cfg.OutputDir,
		Bounds: planner.Bounds{
			Min: a.cfg.Velocity.MinSpeedDuration,
			Max: a.cfg.Velocity.MaxSpeedDuration,
		},
		Rand: a.rand,
	})

	if err := a.Process(ctx, p, timestamps); err != nil {
		return err
	}

	if a.cfg.CopyCommands {
		a.copyCommands(ctx)
	}
	return nil
}

// applyFlags applique les flags par-dessus la config chargée.
func (a *App) applyFlags() error {
	f := a.flags
	if f.Rest != "" {
		rest, err := timestamp.Parse(f.Rest)
		if err != nil {
			return fmt.Errorf("-rest: %w", err)
		}
		a.cfg.RestTime = rest
	}
	if f.OutDir != "" {
		a.cfg.OutputDir = f.OutDir
	}
	if f.DryRun {
		a.cfg.DryRun = true
	}
	if f.Copy {
		a.cfg.CopyCommands = true
	}
	if f.Seed != 0 {
		a.cfg.Velocity.Seed = f.Seed
	}
	// si l'utilisateur a passé -ffmpeg-path, l'appliquer et re-resoudre
	if f.FFmpegPath != "" {
		a.cfg.FFmpeg.Path = f.FFmpegPath
		a.cfg.ResolveFFmpegPath()
	}
	return nil
}

// Process planifie puis traite chaque paire, dans l'ordre du fichier. La
// première erreur interrompt le traitement ; les fichiers déjà produits restent.
func (a *App) Process(ctx context.Context, p *planner.Planner, timestamps []string) error {
	for pair, err := range p.Plan(timestamps) {
		if err != nil {
			return err
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("vt1: %s", pair.From))
		a.ui.PrintInfo(ctx, fmt.Sprintf("vt2: %s", pair.To))
		a.ui.PrintInfo(ctx, fmt.Sprintf("rest time: %s", p.RestTime()))

		for _, seg := range pair.Segments {
			if err := a.dispatch(ctx, seg); err != nil {
				return err
			}
		}
	}
	return nil
}

// dispatch construit la commande du segment puis la lance, sauf si la sortie
// existe déjà ou en dry-run.
func (a *App) dispatch(ctx context.Context, seg planner.Segment) error {
	cmdline, err := ffmpeg.Command(a.cfg.FFmpeg.Name, ffmpeg.SegmentParams{
		Input:    seg.Input,
		Output:   seg.Output,
		Start:    seg.Start,
		End:      seg.End,
		Velocity: seg.Velocity,
	})
	if err != nil {
		return fmt.Errorf("segment %d (%s): %w", seg.Index, seg.Kind, err)
	}

	exists, err := fsutil.FileExists(seg.Output)
	if err != nil {
		return fmt.Errorf("segment %d (%s): %w", seg.Index, seg.Kind, err)
	}
	if exists {
		a.ui.PrintSkip(ctx, seg.Output)
		return nil
	}

	line := ffmpeg.FormatCommand(cmdline[0], cmdline[1:]...)
	a.ui.PrintCommand(ctx, line)
	a.commands = append(a.commands, line)
	if a.cfg.DryRun {
		return nil
	}

	if err := a.ff.Run(ctx, cmdline[1:]); err != nil {
		return fmt.Errorf("segment %d (%s) -> %s: %w", seg.Index, seg.Kind, seg.Output, err)
	}
	return nil
}

// copyCommands copie les commandes traitées ; un échec n'est qu'un avertissement.
func (a *App) copyCommands(ctx context.Context) {
	if len(a.commands) == 0 {
		a.ui.PrintInfo(ctx, "aucune commande à copier")
		return
	}
	if err := a.copyLines(a.commands); err != nil {
		a.ui.PrintWarning(ctx, fmt.Sprintf("copie dans le presse-papier impossible : %v", err))
		return
	}
	a.ui.PrintInfo(ctx, fmt.Sprintf("%d commande(s) copiée(s) dans le presse-papier.", len(a.commands)))
}

// newRand renvoie une source PCG ; une graine nulle donne un tirage différent à
// chaque lancement.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
