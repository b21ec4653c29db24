package clock

import (
	"testing"
	"time"
)

func TestFakeAdvance(t *testing.T) {
	start := time.Date(2026, time.February, 13, 23, 59, 0, 0, time.UTC)
	f := NewFake(start)

	if !f.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", f.Now(), start)
	}

	f.Advance(90 * time.Second)
	want := start.Add(90 * time.Second)
	if !f.Now().Equal(want) {
		t.Errorf("after Advance Now() = %v, want %v", f.Now(), want)
	}

	later := time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)
	f.Set(later)
	if !f.Now().Equal(later) {
		t.Errorf("after Set Now() = %v, want %v", f.Now(), later)
	}
}

func TestRealIsMonotonicEnough(t *testing.T) {
	c := Real()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Errorf("Real clock went backwards: %v then %v", a, b)
	}
}
