package bootstrap

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/patrickprogramme/speedcut/internal/fsutil"
)

// EnsureConfigPresent copie l'asset embarqué assetPath (dans fsys) vers dstPath
// si aucun fichier n'y existe encore. Ne remplace jamais un fichier existant.
// Retourne true si le fichier vient d'être créé.
func EnsureConfigPresent(dstPath string, fsys fs.FS, assetPath string) (bool, error) {
	exists, err := fsutil.FileExists(dstPath)
	if err != nil {
		return false, fmt.Errorf("échec stat fichier cible %s: %w", dstPath, err)
	}
	if exists {
		return false, nil
	}

	if err := fsutil.EnsureDir(filepath.Dir(dstPath)); err != nil {
		return false, fmt.Errorf("dossier de config %s: %w", filepath.Dir(dstPath), err)
	}

	data, err := fs.ReadFile(fsys, filepath.ToSlash(assetPath))
	if err != nil {
		return false, fmt.Errorf("lecture asset embarqué %s: %w", assetPath, err)
	}

	if err := fsutil.WriteFileAtomic(dstPath, data, 0o644); err != nil {
		return false, fmt.Errorf("échec écriture config %s: %w", dstPath, err)
	}
	return true, nil
}
