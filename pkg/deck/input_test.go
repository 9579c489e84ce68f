package deck

import (
	"testing"

	"pgregory.net/rapid"
)

func TestRouterKey(t *testing.T) {
	r := NewRouter(16, 0)

	tests := []struct {
		name string
		ev   KeyEvent
		want Command
		ok   bool
	}{
		{"arrow right", KeyEvent{Key: KeyArrowRight}, Advance, true},
		{"space", KeyEvent{Key: KeySpace}, Advance, true},
		{"arrow left", KeyEvent{Key: KeyArrowLeft}, Retreat, true},
		{"home", KeyEvent{Key: KeyHome}, JumpTo(0), true},
		{"end", KeyEvent{Key: KeyEnd}, JumpTo(15), true},
		{"escape", KeyEvent{Key: KeyEscape}, ToggleFullscreen, true},
		{"ctrl+n", KeyEvent{Key: "n", Ctrl: true}, ShowNotes, true},
		{"meta+n", KeyEvent{Key: "n", Meta: true}, ShowNotes, true},
		{"ctrl+o", KeyEvent{Key: "o", Ctrl: true}, ShowOverview, true},
		{"meta+o", KeyEvent{Key: "o", Meta: true}, ShowOverview, true},
		{"bare n", KeyEvent{Key: "n"}, Command{}, false},
		{"bare o", KeyEvent{Key: "o"}, Command{}, false},
		{"unmapped", KeyEvent{Key: "x"}, Command{}, false},
		{"ctrl+x", KeyEvent{Key: "x", Ctrl: true}, Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := r.Key(tt.ev)
			if route.OK != tt.ok {
				t.Fatalf("OK = %v, want %v", route.OK, tt.ok)
			}
			if route.Command != tt.want {
				t.Errorf("command = %s, want %s", route.Command, tt.want)
			}
			if route.PreventDefault != tt.ok {
				t.Errorf("PreventDefault = %v, want %v", route.PreventDefault, tt.ok)
			}
		})
	}
}

func TestRouterSwipe(t *testing.T) {
	tests := []struct {
		name           string
		startX, startY float64
		endX, endY     float64
		want           Command
		ok             bool
	}{
		{"left drag advances", 200, 100, 140, 110, Advance, true},
		{"right drag retreats", 140, 100, 200, 90, Retreat, true},
		{"short drag ignored", 200, 100, 160, 100, Command{}, false},
		{"exactly threshold ignored", 200, 100, 150, 100, Command{}, false},
		{"vertical dominant ignored", 200, 100, 140, 30, Command{}, false},
		{"diagonal tie ignored", 200, 200, 100, 100, Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(16, DefaultSwipeThreshold)
			r.TouchStart(tt.startX, tt.startY)
			route := r.TouchEnd(tt.endX, tt.endY)
			if route.OK != tt.ok || route.Command != tt.want {
				t.Errorf("got (%s, %v), want (%s, %v)", route.Command, route.OK, tt.want, tt.ok)
			}
			if route.PreventDefault {
				t.Error("swipes never suppress default handling")
			}
		})
	}
}

func TestRouterTouchEndWithoutStart(t *testing.T) {
	r := NewRouter(16, 0)
	if route := r.TouchEnd(0, 0); route.OK {
		t.Errorf("touch end without start should route nothing, got %s", route.Command)
	}

	r.TouchStart(300, 0)
	if route := r.TouchEnd(200, 0); !route.OK {
		t.Fatal("expected swipe to route")
	}
	// Tracking resets after each gesture.
	if route := r.TouchEnd(0, 0); route.OK {
		t.Error("second touch end should route nothing")
	}
}

func TestRouterThresholdDefault(t *testing.T) {
	if got := NewRouter(3, -1).Threshold(); got != DefaultSwipeThreshold {
		t.Errorf("threshold = %v, want %v", got, DefaultSwipeThreshold)
	}
	if got := NewRouter(3, 10).Threshold(); got != 10 {
		t.Errorf("threshold = %v, want 10", got)
	}
}

func TestRouterDoubleClick(t *testing.T) {
	r := NewRouter(4, 0)

	if route := r.DoubleClick(PointerEvent{}); route.OK {
		t.Error("plain double-click should do nothing")
	}
	for _, ev := range []PointerEvent{{Ctrl: true}, {Meta: true}} {
		route := r.DoubleClick(ev)
		if !route.OK || route.Command != ToggleTimer {
			t.Errorf("chorded double-click %+v: got %s", ev, route.Command)
		}
	}
}

func TestRouterSuppressions(t *testing.T) {
	r := NewRouter(4, 0)
	for name, route := range map[string]Route{
		"context menu": r.ContextMenu(),
		"select start": r.SelectStart(),
	} {
		if !route.PreventDefault || route.OK {
			t.Errorf("%s: want suppression with no command, got %+v", name, route)
		}
	}
}

func TestClassifySwipe_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dx := rapid.Float64Range(-500, 500).Draw(rt, "dx")
		dy := rapid.Float64Range(-500, 500).Draw(rt, "dy")

		got := ClassifySwipe(dx, dy, DefaultSwipeThreshold)

		abs := func(v float64) float64 {
			if v < 0 {
				return -v
			}
			return v
		}
		want := SwipeNone
		if abs(dx) > abs(dy) && abs(dx) > DefaultSwipeThreshold {
			if dx > 0 {
				want = SwipeAdvance
			} else {
				want = SwipeRetreat
			}
		}
		if got != want {
			rt.Fatalf("ClassifySwipe(%v, %v) = %v, want %v", dx, dy, got, want)
		}
	})
}

func TestCommandString(t *testing.T) {
	if got := JumpTo(3).String(); got != "jump(3)" {
		t.Errorf("JumpTo(3).String() = %q", got)
	}
	if got := ShowOverview.String(); got != "show-overview" {
		t.Errorf("ShowOverview.String() = %q", got)
	}
	if got := CommandKind(99).String(); got != "CommandKind(99)" {
		t.Errorf("unknown kind = %q", got)
	}
}
