package planner

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patrickprogramme/speedcut/internal/timestamp"
)

func newTestPlanner(rest string, r Rand) *Planner {
	return New(Options{
		RestTime: ts(rest),
		Input:    "videos/talk.mp4",
		OutDir:   "out",
		Rand:     r,
	})
}

func TestPlanPair_LongGapProducesAcceleratedThenRest(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{values: []int{0, 0, 0}})

	pair, err := p.PlanPair(0, "00:00:00", "00:00:40")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2: %+v", len(segs), segs)
	}

	acc, rest := segs[0], segs[1]
	if acc.Kind != KindAccelerated || acc.Start.String() != "00:00:05" || acc.End.String() != "00:00:40" {
		t.Errorf("accelerated = %+v", acc)
	}
	// 35s // 10s
	if acc.Velocity != 3 {
		t.Errorf("accelerated velocity = %d; want 3", acc.Velocity)
	}
	if acc.Output != filepath.Join("out", "talk_0_2.mp4") {
		t.Errorf("accelerated output = %q", acc.Output)
	}
	if acc.Input != filepath.Join("videos", "talk.mp4") {
		t.Errorf("input = %q", acc.Input)
	}

	if rest.Kind != KindRest || rest.Start.String() != "00:00:00" || rest.End.String() != "00:00:05" || rest.Velocity != 1 {
		t.Errorf("rest = %+v", rest)
	}
	if rest.Output != filepath.Join("out", "talk_0_1.mp4") {
		t.Errorf("rest output = %q", rest.Output)
	}
}

func TestPlanPair_ShortGapSingleRest(t *testing.T) {
	r := &fixedRand{}
	p := newTestPlanner("00:00:05", r)

	pair, err := p.PlanPair(3, "00:00:00", "00:00:10")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.Kind != KindRest || s.Start.String() != "00:00:00" || s.End.String() != "00:00:10" || s.Velocity != 1 {
		t.Errorf("rest = %+v", s)
	}
	if s.Output != filepath.Join("out", "talk_3_1.mp4") {
		t.Errorf("output = %q", s.Output)
	}
	// 00:00:05 -> 00:00:10 ne dépasse pas la durée minimale : vélocité 1 sans tirage
	if len(r.ns) != 0 {
		t.Errorf("no random draw expected, got %v", r.ns)
	}
}

func TestPlanPair_ShortGapStillDraws(t *testing.T) {
	r := &fixedRand{}
	p := newTestPlanner("00:00:05", r)

	pair, err := p.PlanPair(0, "00:00:00", "00:00:24")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	if len(r.ns) != 3 {
		t.Fatalf("draws = %v; want hour, minute and second", r.ns)
	}
	if r.ns[0] != 1 || r.ns[1] != 1 || r.ns[2] != 21 {
		t.Errorf("draw ranges = %v; want [1 1 21]", r.ns)
	}
	segs := pair.Segments
	if len(segs) != 1 || segs[0].Kind != KindRest || segs[0].End.String() != "00:00:24" || segs[0].Velocity != 1 {
		t.Errorf("segments = %+v", segs)
	}
}

func TestPlanPair_RestLongerThanShortGap(t *testing.T) {
	p := newTestPlanner("00:00:30", &fixedRand{})
	pair, err := p.PlanPair(0, "00:00:00", "00:00:20")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	if len(segs) != 1 || segs[0].End.String() != "00:00:20" {
		t.Fatalf("segments = %+v", segs)
	}
}

func TestPlanPair_ExactThreshold(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{})
	pair, err := p.PlanPair(0, "00:00:00", "00:00:25")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	// à 25s : ni segment accéléré, ni repos complet
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	if segs[0].Kind != KindRest || segs[0].End.String() != "00:00:05" {
		t.Errorf("rest = %+v", segs[0])
	}
}

func TestPlanPair_VelocityCapped(t *testing.T) {
	p := newTestPlanner("00:00:00", &fixedRand{})
	pair, err := p.PlanPair(0, "00:00:00", "01:00:00")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	if segs[0].Velocity != MaxVelocity {
		t.Errorf("velocity = %d; want %d", segs[0].Velocity, MaxVelocity)
	}
}

func TestPlanPair_SignedInputsAreNormalized(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{})
	pair, err := p.PlanPair(0, "+00:00:00", "-00:00:10")
	if err != nil {
		t.Fatalf("PlanPair error: %v", err)
	}
	segs := pair.Segments
	if got := segs[0].End.String(); got != "00:00:10" {
		t.Errorf("end = %q; want unsigned 00:00:10", got)
	}
}

func TestPlanPair_Errors(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{})

	if _, err := p.PlanPair(0, "00:00:00", "oops"); !errors.Is(err, timestamp.ErrInvalidFormat) {
		t.Errorf("invalid timestamp err = %v", err)
	}
	// paire inversée
	if _, err := p.PlanPair(0, "00:01:00", "00:00:00"); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("reversed pair err = %v", err)
	}
}

func collect(t *testing.T, p *Planner, timestamps ...string) ([]Segment, error) {
	t.Helper()
	var out []Segment
	for pair, err := range p.Plan(timestamps) {
		if err != nil {
			return out, err
		}
		out = append(out, pair.Segments...)
	}
	return out, nil
}

func TestPlan_AllPairs(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{})
	segs, err := collect(t, p, "00:00:00", "00:00:10", "00:01:00", "00:01:20")
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	var kinds []string
	for _, s := range segs {
		kinds = append(kinds, s.Kind.String())
	}
	got := strings.Join(kinds, ",")
	if got != "rest,accelerated,rest,rest" {
		t.Errorf("kinds = %s", got)
	}
	if segs[1].Index != 1 || segs[3].Index != 2 {
		t.Errorf("indexes = %d, %d", segs[1].Index, segs[3].Index)
	}
}

func TestPlan_DrawSequenceIncludesShortPairs(t *testing.T) {
	// la paire courte consomme 0, 0, 20 ; la suivante tire 0, 0, 0 soit 10s
	r := &fixedRand{values: []int{0, 0, 20, 0, 0, 0}}
	p := newTestPlanner("00:00:05", r)

	segs, err := collect(t, p, "00:00:00", "00:00:24", "00:01:04")
	if err != nil {
		t.Fatalf("Plan error: %v", err)
	}
	if len(segs) != 3 || segs[1].Kind != KindAccelerated {
		t.Fatalf("segments = %+v", segs)
	}
	// 00:00:29 -> 00:01:04 : 35s // 10s
	if segs[1].Velocity != 3 {
		t.Errorf("accelerated velocity = %d; want 3", segs[1].Velocity)
	}
	if len(r.ns) != 6 {
		t.Errorf("draws = %v; want 6", r.ns)
	}
}

func TestPlan_IsLazy(t *testing.T) {
	r := &fixedRand{}
	p := newTestPlanner("00:00:05", r)

	for pair, err := range p.Plan([]string{"00:00:00", "00:00:40", "00:01:20", "bad"}) {
		if err != nil {
			t.Fatalf("Plan error: %v", err)
		}
		if pair.Index != 0 {
			t.Fatalf("pair %d planned", pair.Index)
		}
		break
	}
	if len(r.ns) != 3 {
		t.Errorf("draws = %v; only the first pair must be planned", r.ns)
	}
}

func TestPlan_StopsOnError(t *testing.T) {
	p := newTestPlanner("00:00:05", &fixedRand{})
	segs, err := collect(t, p, "00:00:00", "00:00:10", "bad", "00:00:20")
	if !errors.Is(err, timestamp.ErrInvalidFormat) {
		t.Fatalf("err = %v", err)
	}
	if len(segs) != 1 {
		t.Errorf("segments planned before the error = %d; want 1", len(segs))
	}
}

func TestOutputPath_NoExtension(t *testing.T) {
	p := New(Options{Input: "clip", OutDir: ""})
	if got := p.OutputPath(2, KindAccelerated); got != "clip_2_2" {
		t.Errorf("OutputPath = %q", got)
	}
	p = New(Options{Input: ".hidden", OutDir: "o"})
	if got := p.OutputPath(0, KindRest); got != filepath.Join("o", ".hidden_0_1") {
		t.Errorf("OutputPath = %q", got)
	}
}

func TestKindString(t *testing.T) {
	if KindRest.String() != "rest" || KindAccelerated.String() != "accelerated" || Kind(9).String() != "Kind(9)" {
		t.Error("Kind.String mismatch")
	}
}
