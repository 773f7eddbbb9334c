package ui

import "context"

type Interface interface {
	PrintInfo(ctx context.Context, s string)
	PrintWarning(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)

	// PrintCommand affiche une commande ffmpeg (exécutée ou simulée).
	PrintCommand(ctx context.Context, cmd string)

	// PrintSkip signale un segment ignoré car sa sortie existe déjà.
	PrintSkip(ctx context.Context, path string)
}
