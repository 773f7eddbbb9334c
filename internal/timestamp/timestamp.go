package timestamp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat est renvoyée pour toute chaîne qui ne respecte pas [type]hh:mm:ss
var ErrInvalidFormat = errors.New("invalid timestamp format. Accepted format: [type]hh:mm:ss")

// ErrDivisionByZero est renvoyée quand le diviseur vaut 0 seconde.
var ErrDivisionByZero = errors.New("division par un timestamp nul")

// Sign est le marqueur de type placé devant un timestamp.
type Sign byte

const (
	SignPositive Sign = '+'
	SignNegative Sign = '-'
	SignAbsolute Sign = '|' // jamais affiché
)

// Orientation indique si le nombre de secondes d'origine était négatif.
// Purement informatif : les champs h/m/s restent toujours positifs.
type Orientation string

const (
	Positive Orientation = "positive"
	Negative Orientation = "negative"
)

// Timestamp représente une durée (ou un point dans une vidéo) au format [type]hh:mm:ss.
// Toute l'arithmétique et les comparaisons passent par TotalSeconds ; le signe
// n'intervient jamais dans le calcul.
type Timestamp struct {
	sign        Sign
	hour        int
	minute      int
	second      int
	orientation Orientation
}

// Parse lit une chaîne [type]hh:mm:ss où type vaut '+', '-' ou '|' (optionnel).
func Parse(s string) (Timestamp, error) {
	if s == "" {
		return Timestamp{}, fmt.Errorf("%w: chaîne vide", ErrInvalidFormat)
	}

	sign := SignAbsolute
	switch Sign(s[0]) {
	case SignPositive, SignNegative, SignAbsolute:
		sign = Sign(s[0])
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := parseField(p)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		fields[i] = n
	}
	if !fitsInt(fields[0], fields[1], fields[2]) {
		return Timestamp{}, fmt.Errorf("%w: %q dépasse la durée maximale", ErrInvalidFormat, s)
	}

	return Timestamp{
		sign:        sign,
		hour:        fields[0],
		minute:      fields[1],
		second:      fields[2],
		orientation: Positive,
	}, nil
}

// parseField n'accepte que des chiffres (pas de signe, pas d'espace)
func parseField(p string) (int, error) {
	if p == "" {
		return 0, errors.New("champ vide")
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("caractère invalide %q", r)
		}
	}
	return strconv.Atoi(p)
}

// MustParse est comme Parse mais panique en cas d'erreur.
// À réserver aux valeurs par défaut connues à la compilation.
func MustParse(s string) Timestamp {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// New construit un timestamp à partir de ses composantes.
func New(sign Sign, hour, minute, second int) (Timestamp, error) {
	switch sign {
	case SignPositive, SignNegative, SignAbsolute:
	default:
		return Timestamp{}, fmt.Errorf("%w: type %q inconnu", ErrInvalidFormat, sign)
	}
	if hour < 0 || minute < 0 || second < 0 {
		return Timestamp{}, fmt.Errorf("%w: composante négative (%d, %d, %d)", ErrInvalidFormat, hour, minute, second)
	}
	if !fitsInt(hour, minute, second) {
		return Timestamp{}, fmt.Errorf("%w: durée trop grande (%d, %d, %d)", ErrInvalidFormat, hour, minute, second)
	}
	return Timestamp{sign: sign, hour: hour, minute: minute, second: second, orientation: Positive}, nil
}

// fitsInt indique si h*3600 + m*60 + s tient dans un int.
func fitsInt(hour, minute, second int) bool {
	if hour > math.MaxInt/3600 || minute > math.MaxInt/60 {
		return false
	}
	total := hour * 3600
	if minute*60 > math.MaxInt-total {
		return false
	}
	total += minute * 60
	return second <= math.MaxInt-total
}

// FromSeconds décompose abs(seconds) en h/m/s. Le type est toujours '|',
// seule l'orientation garde la trace d'une valeur négative.
// math.MinInt n'a pas d'opposé : sa valeur absolue est ramenée à math.MaxInt.
func FromSeconds(seconds int) Timestamp {
	orientation := Positive
	if seconds == math.MinInt {
		seconds = -math.MaxInt
	}
	if seconds < 0 {
		seconds = -seconds
		orientation = Negative
	}
	return Timestamp{
		sign:        SignAbsolute,
		hour:        seconds / 3600,
		minute:      (seconds % 3600) / 60,
		second:      seconds % 60,
		orientation: orientation,
	}
}

func (t Timestamp) Hour() int   { return t.hour }
func (t Timestamp) Minute() int { return t.minute }
func (t Timestamp) Second() int { return t.second }

func (t Timestamp) Sign() Sign {
	if t.sign == 0 {
		return SignAbsolute
	}
	return t.sign
}

func (t Timestamp) Orientation() Orientation {
	if t.orientation == "" {
		return Positive
	}
	return t.orientation
}

// TotalSeconds est la seule source de vérité pour les calculs.
func (t Timestamp) TotalSeconds() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// String renvoie la forme canonique {type}hh:mm:ss, sans préfixe pour '|'.
func (t Timestamp) String() string {
	prefix := ""
	if s := t.Sign(); s != SignAbsolute {
		prefix = string(s)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d", prefix, t.hour, t.minute, t.second)
}
