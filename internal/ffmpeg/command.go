package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickprogramme/speedcut/internal/timestamp"
)

// SegmentParams décrit un extrait à produire.
type SegmentParams struct {
	Input    string
	Output   string
	Start    timestamp.Timestamp
	End      timestamp.Timestamp
	Velocity int
}

// Args construit les arguments ffmpeg (sans le nom du binaire) :
//
//	-ss START -to END -i INPUT
//	-filter_complex [0:v]setpts=PTS*PTS[v];[0:a]atempo=VEL[a]
//	-map [v] -map [a] OUTPUT
//
// avec PTS = round(1/vélocité, 2) et VEL = vélocité en flottant.
func Args(p SegmentParams) ([]string, error) {
	pts, err := setptsFactor(p.Velocity)
	if err != nil {
		return nil, err
	}
	filter := fmt.Sprintf("[0:v]setpts=%s*PTS[v];[0:a]atempo=%s[a]", pts, strconv.Itoa(p.Velocity)+".0")

	return []string{
		"-ss", p.Start.String(),
		"-to", p.End.String(),
		"-i", p.Input,
		"-filter_complex", filter,
		"-map", "[v]",
		"-map", "[a]",
		p.Output,
	}, nil
}

// Command renvoie la ligne de commande complète, nom du binaire en tête.
func Command(name string, p SegmentParams) ([]string, error) {
	args, err := Args(p)
	if err != nil {
		return nil, err
	}
	return append([]string{name}, args...), nil
}

// setptsFactor arrondit 1/v à 2 décimales (arrondi décimal correct, demi au pair)
// et le formate comme un float « 1.0 », « 0.33 », « 0.5 ».
func setptsFactor(velocity int) (string, error) {
	if velocity < 1 {
		return "", fmt.Errorf("%w: setpts=1/%d", timestamp.ErrDivisionByZero, velocity)
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(1/float64(velocity), 'f', 2, 64), 64)
	if err != nil {
		return "", err
	}
	s := strconv.FormatFloat(rounded, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

// shellSpecial liste les caractères qui imposent des quotes à l'affichage.
const shellSpecial = " \t\n;&|<>()$`\\\"'*?[]#~{}"

// FormatCommand rend une commande copiable dans un shell POSIX.
func FormatCommand(name string, args ...string) string {
	chunks := make([]string, 0, len(args)+1)
	for _, a := range append([]string{name}, args...) {
		if a == "" || strings.ContainsAny(a, shellSpecial) {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		chunks = append(chunks, a)
	}
	return strings.Join(chunks, " ")
}
