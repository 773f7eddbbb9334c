package planner

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/speedcut/internal/timestamp"
)

const (
	// MaxVelocity plafonne la vélocité des segments accélérés.
	MaxVelocity = 70

	// AccelThreshold (en secondes) : en dessous, tout l'intervalle est un segment
	// de repos ; au-dessus (strictement) un segment accéléré est produit.
	// À exactement 25s aucun des deux cas ne s'applique pleinement : seul le
	// repos vt1..vt1+rest est produit. Comportement conservé tel quel.
	AccelThreshold = 25
)

// Kind distingue les deux sous-segments d'une paire.
type Kind int

const (
	KindRest Kind = iota + 1
	KindAccelerated
)

func (k Kind) String() string {
	switch k {
	case KindRest:
		return "rest"
	case KindAccelerated:
		return "accelerated"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Segment décrit une invocation ffmpeg à produire.
type Segment struct {
	Index    int
	Kind     Kind
	Input    string
	Output   string
	Start    timestamp.Timestamp
	End      timestamp.Timestamp
	Velocity int
}

// Pair regroupe les segments produits pour deux timestamps consécutifs.
type Pair struct {
	Index    int
	From     timestamp.Timestamp
	To       timestamp.Timestamp
	Segments []Segment
}

// Options paramètre le Planner.
type Options struct {
	RestTime timestamp.Timestamp
	Input    string
	OutDir   string
	Bounds   Bounds
	Rand     Rand

	// Offset est soustrait à chaque timestamp lu. Toujours nul pour l'application.
	Offset timestamp.Timestamp
}

// Planner transforme des paires de timestamps en segments.
type Planner struct {
	opts  Options
	input string
	stem  string
	ext   string
}

// New construit un Planner. Des Bounds nulles sont remplacées par DefaultBounds.
func New(opts Options) *Planner {
	if opts.Bounds == (Bounds{}) {
		opts.Bounds = DefaultBounds()
	}
	input := filepath.Clean(opts.Input)
	stem, ext := splitName(filepath.Base(input))
	return &Planner{opts: opts, input: input, stem: stem, ext: ext}
}

// splitName découpe "video.mp4" en ("video", ".mp4"). Un fichier caché
// comme ".video" n'a pas d'extension.
func splitName(base string) (string, string) {
	ext := filepath.Ext(base)
	if ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}

// OutputPath renvoie le fichier de sortie du segment `kind` de la paire i.
func (p *Planner) OutputPath(i int, kind Kind) string {
	suffix := 1
	if kind == KindAccelerated {
		suffix = 2
	}
	return filepath.Join(p.opts.OutDir, fmt.Sprintf("%s_%d_%d%s", p.stem, i, suffix, p.ext))
}

// PlanPair planifie la paire (from, to) d'indice i. Le segment accéléré, s'il
// existe, précède le segment de repos.
//
// La vélocité est tirée pour chaque paire, même courte, afin que la suite des
// tirages ne dépende pas de la longueur des paires précédentes.
func (p *Planner) PlanPair(i int, from, to string) (Pair, error) {
	vt1, err := timestamp.Parse(from)
	if err != nil {
		return Pair{}, fmt.Errorf("timestamp n°%d: %w", i+1, err)
	}
	vt2, err := timestamp.Parse(to)
	if err != nil {
		return Pair{}, fmt.Errorf("timestamp n°%d: %w", i+2, err)
	}
	vt1 = vt1.Sub(p.opts.Offset)
	vt2 = vt2.Sub(p.opts.Offset)
	if vt2.Less(vt1) {
		return Pair{}, fmt.Errorf("paire %d: %w: %s est avant %s", i, ErrInvalidRange, vt2, vt1)
	}

	restEnd := vt1.Add(p.opts.RestTime)
	gap := vt2.Sub(vt1).TotalSeconds()

	// le repos peut dépasser vt2 sur une paire courte : seul l'écart compte
	lo, hi := restEnd, vt2
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	velocity, err := ChooseVelocity(p.opts.Rand, lo, hi, p.opts.Bounds)
	if err != nil {
		return Pair{}, fmt.Errorf("paire %d (%s -> %s): %w", i, vt1, vt2, err)
	}
	velocity = min(velocity, MaxVelocity)

	restTo := restEnd
	if gap < AccelThreshold {
		restTo = vt2
		velocity = 1
	}

	segments := make([]Segment, 0, 2)
	if gap > AccelThreshold {
		segments = append(segments, Segment{
			Index:    i,
			Kind:     KindAccelerated,
			Input:    p.input,
			Output:   p.OutputPath(i, KindAccelerated),
			Start:    restEnd,
			End:      vt2,
			Velocity: velocity,
		})
	}
	segments = append(segments, Segment{
		Index:    i,
		Kind:     KindRest,
		Input:    p.input,
		Output:   p.OutputPath(i, KindRest),
		Start:    vt1,
		End:      restTo,
		Velocity: 1,
	})
	return Pair{Index: i, From: vt1, To: vt2, Segments: segments}, nil
}

// Plan parcourt les paires consécutives à la demande : chaque paire n'est
// planifiée (et ses tirages faits) qu'au moment où l'appelant la consomme.
// L'itération s'arrête après la première erreur.
func (p *Planner) Plan(timestamps []string) iter.Seq2[Pair, error] {
	return func(yield func(Pair, error) bool) {
		for i := 0; i+1 < len(timestamps); i++ {
			pair, err := p.PlanPair(i, timestamps[i], timestamps[i+1])
			if !yield(pair, err) || err != nil {
				return
			}
		}
	}
}

func (p *Planner) RestTime() timestamp.Timestamp { return p.opts.RestTime }
