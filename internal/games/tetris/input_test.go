package tetris

import "testing"

func TestMapperFreshPressFires(t *testing.T) {
	m := NewMapper()
	if !m.KeyDown(CmdMoveLeft, 0) {
		t.Fatal("fresh press should fire")
	}
	if !m.Held(CmdMoveLeft) {
		t.Error("command should be held after KeyDown")
	}
}

func TestMapperHeldPressDoesNotDoubleFire(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdMoveLeft, 0)
	if m.KeyDown(CmdMoveLeft, 10) {
		t.Error("repeated down edge for a held key must not fire again")
	}
	m.KeyDown(CmdRotate, 0)
	if m.KeyDown(CmdRotate, 10) {
		t.Error("held rotate must not fire again without a release")
	}
}

func TestMapperRepeatTiming(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdMoveRight, 0)

	if got := m.Poll(169); len(got) != 0 {
		t.Fatalf("no repeat before the initial delay, got %v", got)
	}
	got := m.Poll(170)
	if len(got) != 1 || got[0] != CmdMoveRight {
		t.Fatalf("Poll(170) = %v, want [MoveRight]", got)
	}
	if got := m.Poll(219); len(got) != 0 {
		t.Fatalf("no repeat before the interval elapses, got %v", got)
	}
	got = m.Poll(220)
	if len(got) != 1 || got[0] != CmdMoveRight {
		t.Fatalf("Poll(220) = %v, want [MoveRight]", got)
	}
}

func TestMapperPollCatchesUp(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdSoftDrop, 0)

	// 170ms delay plus two 50ms intervals have elapsed by 270ms.
	got := m.Poll(270)
	if len(got) != 3 {
		t.Fatalf("Poll(270) fired %d times, want 3", len(got))
	}
}

func TestMapperKeyUpStopsRepeats(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdMoveLeft, 0)
	m.KeyUp(CmdMoveLeft)
	if got := m.Poll(500); len(got) != 0 {
		t.Fatalf("released key must not repeat, got %v", got)
	}
	if !m.KeyDown(CmdMoveLeft, 500) {
		t.Error("press after release should fire again")
	}
}

func TestMapperNonRepeatableNeverRepeats(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdRotate, 0)
	m.KeyDown(CmdHardDrop, 0)
	if got := m.Poll(1000); len(got) != 0 {
		t.Fatalf("rotate and hard drop must not auto-repeat, got %v", got)
	}
}

func TestMapperAutoRelease(t *testing.T) {
	m := NewMapper()
	m.SetAutoRelease(150)
	m.KeyDown(CmdMoveLeft, 0)

	// A terminal repeat edge at 100ms refreshes the hold.
	m.KeyDown(CmdMoveLeft, 100)
	if got := m.Poll(170); len(got) != 1 {
		t.Fatalf("refreshed hold should still repeat, got %v", got)
	}

	// No further edges: the hold expires 150ms after the last press
	// and pending repeats are dropped, not fired.
	if got := m.Poll(400); len(got) != 0 {
		t.Fatalf("expired hold must not fire, got %v", got)
	}
	if m.Held(CmdMoveLeft) {
		t.Error("hold should be released after the grace window")
	}
}

func TestMapperSetDelays(t *testing.T) {
	m := NewMapper()
	m.SetDelays(100, 20)
	m.KeyDown(CmdMoveRight, 0)
	if got := m.Poll(99); len(got) != 0 {
		t.Fatalf("custom delay not honored, got %v", got)
	}
	if got := m.Poll(100); len(got) != 1 {
		t.Fatalf("Poll(100) fired %d times, want 1", len(got))
	}
	if got := m.Poll(120); len(got) != 1 {
		t.Fatalf("custom interval not honored, got %d fires", len(got))
	}
}

func TestMapperCancelAll(t *testing.T) {
	m := NewMapper()
	m.KeyDown(CmdMoveLeft, 0)
	m.KeyDown(CmdSoftDrop, 0)
	m.CancelAll()
	if m.Held(CmdMoveLeft) || m.Held(CmdSoftDrop) {
		t.Error("CancelAll should drop every held key")
	}
	if got := m.Poll(1000); len(got) != 0 {
		t.Fatalf("no repeats after CancelAll, got %v", got)
	}
}
