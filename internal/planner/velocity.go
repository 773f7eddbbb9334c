package planner

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/speedcut/internal/timestamp"
)

// ErrInvalidRange signale un intervalle inversé (fin avant début) ou des bornes vides.
var ErrInvalidRange = errors.New("intervalle invalide")

// Rand est la source aléatoire utilisée pour tirer les durées.
// *rand.Rand (math/rand/v2) la satisfait ; les tests injectent une source fixe.
type Rand interface {
	IntN(n int) int
}

// Bounds encadre la durée tirée au hasard pour un segment accéléré.
type Bounds struct {
	Min timestamp.Timestamp
	Max timestamp.Timestamp
}

func DefaultBounds() Bounds {
	return Bounds{
		Min: timestamp.MustParse("00:00:10"),
		Max: timestamp.MustParse("00:00:30"),
	}
}

// ChooseVelocity choisit un facteur d'accélération pour l'intervalle vt1..vt2.
// Un écart <= b.Min donne 1. Sinon une durée est tirée champ par champ
// (heure, minute, seconde indépendamment, bornes incluses) et la vélocité vaut
// (vt2 - vt1) // durée.
func ChooseVelocity(r Rand, vt1, vt2 timestamp.Timestamp, b Bounds) (int, error) {
	gap := vt2.Sub(vt1)
	if gap.Orientation() == timestamp.Negative {
		return 0, fmt.Errorf("%w: %s est après %s", ErrInvalidRange, vt1, vt2)
	}
	if gap.LessOrEqual(b.Min) {
		return 1, nil
	}

	hour, err := randInt(r, b.Min.Hour(), b.Max.Hour())
	if err != nil {
		return 0, fmt.Errorf("heures: %w", err)
	}
	minute, err := randInt(r, b.Min.Minute(), b.Max.Minute())
	if err != nil {
		return 0, fmt.Errorf("minutes: %w", err)
	}
	second, err := randInt(r, b.Min.Second(), b.Max.Second())
	if err != nil {
		return 0, fmt.Errorf("secondes: %w", err)
	}

	duration, err := timestamp.New(timestamp.SignAbsolute, hour, minute, second)
	if err != nil {
		return 0, err
	}
	return gap.FloorDiv(duration)
}

// randInt tire un entier dans [lo, hi], bornes incluses.
func randInt(r Rand, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("%w: [%d, %d] vide", ErrInvalidRange, lo, hi)
	}
	return lo + r.IntN(hi-lo+1), nil
}
