package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrNotCopied signale que le presse-papier ne contient pas le texte écrit
// (pas de gestionnaire de presse-papier, session SSH, ...).
var ErrNotCopied = errors.New("le presse-papier n'a pas été mis à jour")

// WriteAll écrit une chaîne de caractères dans le presse-papier.
func WriteAll(text string) error {
	if text == "" {
		return errors.New("le texte à copier ne peut pas être vide")
	}
	return clipboard.WriteAll(text)
}

// CopyLines copie les lignes (séparées par \n) puis relit le presse-papier
// pour s'assurer que la copie a bien eu lieu.
func CopyLines(lines []string) error {
	text := strings.Join(lines, "\n")
	if err := WriteAll(text); err != nil {
		return err
	}
	if !ClipboardEquals(text) {
		return ErrNotCopied
	}
	return nil
}

// ClipboardEquals vérifie si le contenu actuel du presse-papier est
// strictement égal à text. Une erreur de lecture donne false.
func ClipboardEquals(text string) bool {
	current, err := clipboard.ReadAll()
	if err != nil {
		return false
	}
	return current == text
}
