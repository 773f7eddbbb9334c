package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ErrSubprocessFailure est renvoyée quand ffmpeg sort avec un code non nul.
var ErrSubprocessFailure = errors.New("ffmpeg a échoué")

// taille max de la sortie jointe à une erreur
const maxOutputTail = 2048

// FFmpeg représente le binaire ffmpeg à exécuter (nom ou chemin).
type FFmpeg struct {
	Name string
	Path string // chemin vers l'exe, vide => recherche dans PATH

	// Stderr reçoit la progression de ffmpeg (os.Stderr si nil).
	Stderr io.Writer
}

// NewFFmpeg construit une instance. Path doit être le chemin résolu vers l'exe (ou vide).
func NewFFmpeg(name string, resolvedPath string) *FFmpeg {
	return &FFmpeg{
		Name: name,
		Path: resolvedPath,
	}
}

func (f *FFmpeg) executable() string {
	if f.Path != "" {
		return f.Path
	}
	return f.Name
}

// CheckBinary vérifie que le binaire existe. Sans chemin configuré, le nom est
// cherché dans PATH et f.Path est renseigné avec le résultat.
func (f *FFmpeg) CheckBinary() error {
	if f == nil {
		return fmt.Errorf("ffmpeg non initialisé")
	}

	if f.Path == "" {
		p, err := exec.LookPath(f.Name)
		if err != nil {
			return fmt.Errorf("%s introuvable dans le PATH : %w", f.Name, err)
		}
		f.Path = p
		return nil
	}

	info, err := os.Stat(f.Path)
	if err != nil {
		return fmt.Errorf("ffmpeg introuvable (%s) à l'emplacement spécifié : %w", f.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour ffmpeg est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// Run exécute ffmpeg avec args et bloque jusqu'à la fin du processus.
func (f *FFmpeg) Run(ctx context.Context, args []string) error {
	var stdout, stderr bytes.Buffer
	progress := f.Stderr
	if progress == nil {
		progress = os.Stderr
	}

	cmd := exec.CommandContext(ctx, f.executable(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.MultiWriter(progress, &stderr)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("ffmpeg interrompu : %w", ctx.Err())
		}
		return fmt.Errorf("%w: %v, output: %s", ErrSubprocessFailure, err, tail(stdout.Bytes(), stderr.Bytes()))
	}
	return nil
}

func tail(stdout, stderr []byte) string {
	out := append(append([]byte{}, stdout...), stderr...)
	out = bytes.TrimSpace(out)
	if len(out) > maxOutputTail {
		out = out[len(out)-maxOutputTail:]
	}
	return string(out)
}
