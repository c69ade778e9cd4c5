package theme

import "testing"

func TestSetModeSwapsPalette(t *testing.T) {
	t.Cleanup(func() { SetMode(Dark) })

	SetMode(Light)
	if Current() != Light {
		t.Fatalf("expected light, got %s", Current())
	}
	if Text != palettes[Light].Text {
		t.Error("expected light text color after SetMode(Light)")
	}

	if got := Toggle(); got != Dark {
		t.Fatalf("expected toggle to dark, got %s", got)
	}
	if Text != palettes[Dark].Text {
		t.Error("expected dark text color after toggle")
	}
}

func TestSetModeUnknownFallsBackToDark(t *testing.T) {
	t.Cleanup(func() { SetMode(Dark) })

	SetMode(Light)
	SetMode(Mode("sepia"))
	if Current() != Dark {
		t.Fatalf("expected dark fallback, got %s", Current())
	}
}
