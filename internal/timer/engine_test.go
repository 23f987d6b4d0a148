package timer

import (
	"testing"
	"time"

	"github.com/abhisek/focusbar/internal/config"
)

// fakeClock is a manually advanced clock for deterministic timer tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func testEngine() (*Engine, *fakeClock) {
	clk := &fakeClock{t: time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)}
	e := New(config.Default())
	e.now = clk.Now
	return e, clk
}

func TestStartFromIdle(t *testing.T) {
	e, _ := testEngine()

	e.Start(0)
	if e.State() != StateRunning {
		t.Fatalf("state = %v, want running", e.State())
	}
	if e.TotalSecs() != config.DefaultFocusMinutes*60 {
		t.Errorf("total = %d, want %d", e.TotalSecs(), config.DefaultFocusMinutes*60)
	}
	if e.Remaining() != e.TotalSecs() {
		t.Errorf("remaining = %d, want full duration", e.Remaining())
	}
}

func TestStartWithOverrideDuration(t *testing.T) {
	e, _ := testEngine()

	e.Start(2)
	if e.TotalSecs() != 120 {
		t.Errorf("total = %d, want 120", e.TotalSecs())
	}
}

func TestCountdownCompletesExactlyOnce(t *testing.T) {
	e, clk := testEngine()
	e.Start(1) // 60 seconds

	var completions []*Completion
	for i := 0; i < 60; i++ {
		clk.Advance(time.Second)
		remaining, c := e.Tick()
		if c != nil {
			completions = append(completions, c)
			if remaining != 0 {
				t.Errorf("remaining at completion = %d, want 0", remaining)
			}
		} else if remaining != 60-(i+1) {
			t.Errorf("tick %d: remaining = %d, want %d", i+1, remaining, 60-(i+1))
		}
		if c != nil && i != 59 {
			t.Errorf("completion fired at tick %d, want tick 60", i+1)
		}
	}

	if len(completions) != 1 {
		t.Fatalf("got %d completions, want exactly 1", len(completions))
	}
	if completions[0].Kind != KindFocus || completions[0].DurationSecs != 60 {
		t.Errorf("completion = %+v, want focus/60s", completions[0])
	}
	if e.State() != StateIdle {
		t.Errorf("state after completion = %v, want idle", e.State())
	}
}

func TestPauseResumePreservesRemaining(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)

	clk.Advance(10 * time.Minute)
	e.Tick()
	if got := e.Remaining(); got != 15*60 {
		t.Fatalf("remaining before pause = %d, want %d", got, 15*60)
	}

	e.Pause()
	if e.State() != StatePaused {
		t.Fatalf("state = %v, want paused", e.State())
	}

	// Wall-clock time elapsed while paused must not count.
	clk.Advance(3 * time.Hour)

	e.Start(0)
	if e.State() != StateRunning {
		t.Fatalf("state = %v, want running after resume", e.State())
	}

	clk.Advance(time.Second)
	remaining, c := e.Tick()
	if c != nil {
		t.Fatal("unexpected completion after resume")
	}
	if remaining != 15*60-1 {
		t.Errorf("remaining after resume tick = %d, want %d", remaining, 15*60-1)
	}
}

func TestPauseWhileIdleIsNoop(t *testing.T) {
	e, _ := testEngine()
	e.Pause()
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)
	clk.Advance(5 * time.Minute)
	e.Tick()

	e.Start(10)
	if e.TotalSecs() != 25*60 {
		t.Errorf("total changed by start-while-running: %d", e.TotalSecs())
	}
	if e.Remaining() != 20*60 {
		t.Errorf("remaining = %d, want %d", e.Remaining(), 20*60)
	}
}

func TestResetClearsWithoutCompletion(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)
	clk.Advance(time.Minute)
	e.Tick()

	e.Reset()
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
	if e.Remaining() != 0 || e.TotalSecs() != 0 {
		t.Errorf("timer state not cleared: remaining=%d total=%d", e.Remaining(), e.TotalSecs())
	}
}

func TestSkipReportsPlannedDuration(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)

	// Only 2 minutes elapsed; the skip still credits all 25.
	clk.Advance(2 * time.Minute)
	e.Tick()

	c := e.Skip()
	if c == nil {
		t.Fatal("expected completion from skip")
	}
	if c.DurationSecs != 25*60 {
		t.Errorf("skip duration = %d, want planned %d", c.DurationSecs, 25*60)
	}
	if c.Kind != KindFocus {
		t.Errorf("skip kind = %v, want focus", c.Kind)
	}
	if e.State() != StateIdle {
		t.Errorf("state after skip = %v, want idle", e.State())
	}
}

func TestSkipFromPaused(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)
	clk.Advance(time.Minute)
	e.Tick()
	e.Pause()

	c := e.Skip()
	if c == nil {
		t.Fatal("expected completion from skip while paused")
	}
	if c.DurationSecs != 25*60 {
		t.Errorf("skip duration = %d, want planned %d", c.DurationSecs, 25*60)
	}
}

func TestSkipFromIdleIsNoop(t *testing.T) {
	e, _ := testEngine()
	if c := e.Skip(); c != nil {
		t.Errorf("skip from idle produced completion %+v", c)
	}
}

func TestWakeAfterShortSleepDeductsElapsed(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)

	clk.Advance(5 * time.Minute)
	e.Tick()
	e.HandleSleep()

	// Asleep for 10 minutes; no ticks arrive.
	clk.Advance(10 * time.Minute)

	c := e.HandleWake()
	if c != nil {
		t.Fatal("unexpected completion: 10 minutes remain")
	}
	if got := e.Remaining(); got != 10*60 {
		t.Errorf("remaining after wake = %d, want %d", got, 10*60)
	}
	if e.State() != StateRunning {
		t.Errorf("state = %v, want running", e.State())
	}
}

func TestWakePastDeadlineCompletesSynchronously(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)

	clk.Advance(5 * time.Minute)
	e.Tick()
	e.HandleSleep()

	// Asleep past the end of the session.
	clk.Advance(time.Hour)

	c := e.HandleWake()
	if c == nil {
		t.Fatal("expected synchronous completion on wake")
	}
	if c.Kind != KindFocus || c.DurationSecs != 25*60 {
		t.Errorf("completion = %+v, want focus/%d", c, 25*60)
	}
	if e.State() != StateIdle {
		t.Errorf("state = %v, want idle", e.State())
	}
}

func TestWakeWhilePausedIsNoop(t *testing.T) {
	e, clk := testEngine()
	e.Start(25)
	e.Pause()
	clk.Advance(time.Hour)

	if c := e.HandleWake(); c != nil {
		t.Errorf("wake while paused produced completion %+v", c)
	}
	if e.State() != StatePaused {
		t.Errorf("state = %v, want paused", e.State())
	}
}

func TestCycleSequence(t *testing.T) {
	e, _ := testEngine() // sessionsUntilLongBreak = 4

	want := []Kind{
		KindShortBreak, KindFocus,
		KindShortBreak, KindFocus,
		KindShortBreak, KindFocus,
		KindLongBreak, KindFocus,
		KindShortBreak,
	}

	var got []Kind
	for range want {
		e.AdvanceToNextSession()
		got = append(got, e.Kind())
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("advance %d: kind = %v, want %v (sequence %v)", i+1, got[i], want[i], got)
		}
	}
}

func TestCycleCounterResetsAfterLongBreak(t *testing.T) {
	e, _ := testEngine()

	// Complete 4 focus sessions to reach the long break.
	for i := 0; i < 7; i++ {
		e.AdvanceToNextSession()
	}
	if e.Kind() != KindLongBreak {
		t.Fatalf("kind = %v, want longBreak", e.Kind())
	}
	if e.CompletedFocusInCycle() != 4 {
		t.Fatalf("cycle count = %d, want 4", e.CompletedFocusInCycle())
	}

	e.AdvanceToNextSession()
	if e.Kind() != KindFocus {
		t.Fatalf("kind = %v, want focus after long break", e.Kind())
	}
	if e.CompletedFocusInCycle() != 0 {
		t.Errorf("cycle count = %d, want 0 after long break", e.CompletedFocusInCycle())
	}
}

func TestKindDefaults(t *testing.T) {
	cfg := config.Config{} // all zero: every kind falls back to defaults
	tests := []struct {
		kind Kind
		want int
	}{
		{KindFocus, config.DefaultFocusMinutes},
		{KindShortBreak, config.DefaultShortBreakMinutes},
		{KindLongBreak, config.DefaultLongBreakMinutes},
	}
	for _, tt := range tests {
		if got := tt.kind.Minutes(cfg); got != tt.want {
			t.Errorf("%s minutes = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
