package timestamp

import "fmt"

func (t Timestamp) Add(o Timestamp) Timestamp {
	return FromSeconds(t.TotalSeconds() + o.TotalSeconds())
}

func (t Timestamp) AddSeconds(seconds int) Timestamp {
	return FromSeconds(t.TotalSeconds() + seconds)
}

// Sub peut produire un résultat d'orientation négative ; les champs restent
// la décomposition de la valeur absolue.
func (t Timestamp) Sub(o Timestamp) Timestamp {
	return FromSeconds(t.TotalSeconds() - o.TotalSeconds())
}

func (t Timestamp) SubSeconds(seconds int) Timestamp {
	return t.AddSeconds(-seconds)
}

// Compare renvoie -1, 0 ou +1 selon TotalSeconds.
func (t Timestamp) Compare(o Timestamp) int {
	a, b := t.TotalSeconds(), o.TotalSeconds()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t Timestamp) Equal(o Timestamp) bool          { return t.Compare(o) == 0 }
func (t Timestamp) Less(o Timestamp) bool           { return t.Compare(o) < 0 }
func (t Timestamp) Greater(o Timestamp) bool        { return t.Compare(o) > 0 }
func (t Timestamp) LessOrEqual(o Timestamp) bool    { return t.Compare(o) <= 0 }
func (t Timestamp) GreaterOrEqual(o Timestamp) bool { return t.Compare(o) >= 0 }

// FloorDiv effectue la division entière des TotalSeconds.
func (t Timestamp) FloorDiv(o Timestamp) (int, error) {
	d := o.TotalSeconds()
	if d == 0 {
		return 0, fmt.Errorf("%w: %s // %s", ErrDivisionByZero, t, o)
	}
	// les deux opérandes sont >= 0, la troncature Go équivaut au floor
	return t.TotalSeconds() / d, nil
}

// TrueDiv effectue la division réelle des TotalSeconds.
func (t Timestamp) TrueDiv(o Timestamp) (float64, error) {
	d := o.TotalSeconds()
	if d == 0 {
		return 0, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, t, o)
	}
	return float64(t.TotalSeconds()) / float64(d), nil
}

// MarshalText permet d'écrire un timestamp dans le YAML de config.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText permet de lire un timestamp directement depuis le YAML de config.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
