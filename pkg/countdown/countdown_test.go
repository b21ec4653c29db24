package countdown

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Mandrupnicolai/ValentinePage/pkg/clock"
	"github.com/Mandrupnicolai/ValentinePage/pkg/schedule"
)

func TestNextTargetDate(t *testing.T) {
	cet := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "autumn rolls to next year",
			now:  time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC),
			want: time.Date(2027, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "new year targets this year",
			now:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "one second before midnight",
			now:  time.Date(2026, time.February, 13, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at target rolls over",
			now:  time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC),
			want: time.Date(2027, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "during valentines day rolls over",
			now:  time.Date(2026, time.February, 14, 18, 30, 0, 0, time.UTC),
			want: time.Date(2027, time.February, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps the caller's location",
			now:  time.Date(2026, time.February, 1, 9, 0, 0, 0, cet),
			want: time.Date(2026, time.February, 14, 0, 0, 0, 0, cet),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTargetDate(tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextTargetDate(%v) = %v, want %v", tt.now, got, tt.want)
			}
			if got.Location() != tt.now.Location() {
				t.Errorf("location = %v, want %v", got.Location(), tt.now.Location())
			}
		})
	}
}

func TestNextTargetDateIsAlwaysFutureValentine(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	base := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		now := base.Add(time.Duration(rng.Int63n(int64(60 * 365 * 24 * time.Hour))))
		got := NextTargetDate(now)

		if !got.After(now) {
			t.Fatalf("NextTargetDate(%v) = %v is not after now", now, got)
		}
		if got.Month() != time.February || got.Day() != 14 {
			t.Fatalf("NextTargetDate(%v) = %v is not Feb 14", now, got)
		}
		if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
			t.Fatalf("NextTargetDate(%v) = %v is not midnight", now, got)
		}
		if got.Sub(now) > 366*24*time.Hour {
			t.Fatalf("NextTargetDate(%v) = %v skipped a Valentine's Day", now, got)
		}
	}
}

func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2000; i++ {
		diff := time.Duration(rng.Int63n(int64(400 * 24 * time.Hour)))
		target := now.Add(diff)
		b := Compute(target, now)

		if b.TotalSeconds() != int64(diff/time.Second) {
			t.Fatalf("Compute for diff %v: total %d, want %d", diff, b.TotalSeconds(), int64(diff/time.Second))
		}
		if b.Hours < 0 || b.Hours >= 24 || b.Minutes < 0 || b.Minutes >= 60 || b.Seconds < 0 || b.Seconds >= 60 {
			t.Fatalf("Compute for diff %v produced out-of-range fields %+v", diff, b)
		}
	}
}

func TestComputeClampsAtAndPastTarget(t *testing.T) {
	target := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
	}{
		{"at target", target},
		{"one second late", target.Add(time.Second)},
		{"a year late", target.AddDate(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Compute(target, tt.now)
			if b != (Breakdown{}) {
				t.Errorf("Compute = %+v, want zero", b)
			}
			if b.String() != "00:00:00:00" {
				t.Errorf("String() = %q, want 00:00:00:00", b.String())
			}
		})
	}
}

func TestComputeTruncatesPartialSeconds(t *testing.T) {
	now := time.Date(2026, time.February, 13, 0, 0, 0, 0, time.UTC)
	target := now.Add(26*time.Hour + 3*time.Minute + 4*time.Second + 900*time.Millisecond)

	b := Compute(target, now)
	want := Breakdown{Days: 1, Hours: 2, Minutes: 3, Seconds: 4}
	if b != want {
		t.Errorf("Compute = %+v, want %+v", b, want)
	}
	if got := b.Fields(); got != [4]string{"01", "02", "03", "04"} {
		t.Errorf("Fields() = %v", got)
	}
}

func TestBreakdownFieldsKeepLargeDayCounts(t *testing.T) {
	b := Breakdown{Days: 119, Hours: 5}
	if got := b.String(); got != "119:05:00:00" {
		t.Errorf("String() = %q, want 119:05:00:00", got)
	}
}

func newTestEngine(now time.Time) (*Engine, *schedule.Scheduler, *clock.Fake) {
	sched := schedule.New()
	fake := clock.NewFake(now)
	return NewEngine(sched, fake), sched, fake
}

// advance moves the wall clock and the scheduler together, one second at a time.
func advance(sched *schedule.Scheduler, fake *clock.Fake, seconds int) {
	for i := 0; i < seconds; i++ {
		fake.Advance(time.Second)
		sched.Advance(time.Second)
	}
}

func TestEngineStartEmitsImmediatelyThenEverySecond(t *testing.T) {
	now := time.Date(2026, time.February, 13, 23, 59, 50, 0, time.UTC)
	engine, sched, fake := newTestEngine(now)

	var got []Breakdown
	h := engine.Start(0, func(b Breakdown) { got = append(got, b) })
	if h == 0 {
		t.Fatal("Start returned the zero handle")
	}
	if len(got) != 1 || got[0].Seconds != 10 {
		t.Fatalf("immediate emission = %+v, want one breakdown with 10 seconds", got)
	}

	advance(sched, fake, 3)
	if len(got) != 4 {
		t.Fatalf("emissions after 3s = %d, want 4", len(got))
	}
	if got[3].Seconds != 7 {
		t.Errorf("latest breakdown = %+v, want 7 seconds left", got[3])
	}
}

func TestEngineHoldsTargetAndClampsAfterExpiry(t *testing.T) {
	now := time.Date(2026, time.February, 13, 23, 59, 58, 0, time.UTC)
	engine, sched, fake := newTestEngine(now)

	var last Breakdown
	engine.Start(0, func(b Breakdown) { last = b })

	advance(sched, fake, 5)
	if last != (Breakdown{}) {
		t.Errorf("breakdown past the held target = %+v, want zero", last)
	}
}

func TestEngineStartReplacesExisting(t *testing.T) {
	engine, sched, fake := newTestEngine(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))

	first, second := 0, 0
	h1 := engine.Start(0, func(Breakdown) { first++ })
	h2 := engine.Start(h1, func(Breakdown) { second++ })

	if h1 == h2 {
		t.Fatal("Start should return a new handle")
	}
	if sched.Active(h1) {
		t.Error("replaced countdown is still scheduled")
	}
	if engine.Active() != 1 {
		t.Errorf("Active() = %d, want 1", engine.Active())
	}

	advance(sched, fake, 2)
	if first != 1 {
		t.Errorf("replaced countdown ticked %d times, want only its initial emission", first)
	}
	if second != 3 {
		t.Errorf("current countdown emitted %d times, want 3", second)
	}
}

func TestEngineStopIsIdempotent(t *testing.T) {
	engine, sched, fake := newTestEngine(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))

	if h := engine.Stop(0); h != 0 {
		t.Errorf("Stop(0) = %d, want 0", h)
	}

	ticks := 0
	h := engine.Start(0, func(Breakdown) { ticks++ })
	h = engine.Stop(h)
	if h != 0 {
		t.Errorf("Stop returned %d, want 0", h)
	}
	h = engine.Stop(h)
	if h != 0 {
		t.Errorf("second Stop returned %d, want 0", h)
	}

	advance(sched, fake, 3)
	if ticks != 1 {
		t.Errorf("stopped countdown ticked: %d emissions, want 1", ticks)
	}
	if engine.Active() != 0 {
		t.Errorf("Active() = %d, want 0", engine.Active())
	}
}

func TestEngineAtMostOneActive(t *testing.T) {
	engine, sched, fake := newTestEngine(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))
	rng := rand.New(rand.NewSource(7))

	var h schedule.Handle
	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			h = engine.Start(h, nil)
		} else {
			h = engine.Stop(h)
		}
		advance(sched, fake, rng.Intn(3))
		if n := engine.Active(); n > 1 {
			t.Fatalf("step %d: %d countdowns active", i, n)
		}
	}
}
