package wmconfig

import (
	"os"
	"sync"
	"testing"

	"github.com/thoreinstein/tagwm/internal/display"
	"github.com/thoreinstein/tagwm/internal/errors"
	"github.com/thoreinstein/tagwm/internal/logging"
)

func TestHolder_Reload(t *testing.T) {
	p := writeDoc(t, "rc.toml", minimalScreen)
	h, err := NewHolder(t.Context(), Options{
		Path:    p,
		Display: display.NewHeadless(1),
		Logger:  logging.ForTest(t),
	})
	if err != nil {
		t.Fatalf("NewHolder() error = %v", err)
	}

	old := h.Runtime()
	if old.Screens[0].Border != 1 {
		t.Fatalf("Border = %d, want 1", old.Screens[0].Border)
	}

	if err := os.WriteFile(p, []byte(minimalScreen+"\n  [screen.general]\n  border = 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	rt, err := h.Reload(t.Context())
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	if rt == old || h.Runtime() != rt {
		t.Error("Reload() did not publish a new runtime")
	}
	if rt.Screens[0].Border != 4 {
		t.Errorf("new Border = %d, want 4", rt.Screens[0].Border)
	}
	if old.Screens[0].Border != 1 {
		t.Errorf("old runtime was modified: Border = %d", old.Screens[0].Border)
	}
}

func TestHolder_ReloadFailureKeepsCurrent(t *testing.T) {
	p := writeDoc(t, "rc.toml", minimalScreen)
	h, err := NewHolder(t.Context(), Options{
		Path:    p,
		Display: display.NewHeadless(1),
		Logger:  logging.ForTest(t),
	})
	if err != nil {
		t.Fatalf("NewHolder() error = %v", err)
	}
	cur := h.Runtime()

	noTags := "[[screen]]\n  [[screen.layouts.layout]]\n  title = \"tile\"\n"
	if err := os.WriteFile(p, []byte(noTags), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Reload(t.Context()); !errors.Is(err, errors.ErrNoTags) {
		t.Fatalf("Reload() error = %v, want ErrNoTags", err)
	}
	if h.Runtime() != cur {
		t.Error("failed Reload() replaced the current runtime")
	}
}

func TestHolder_ConcurrentReaders(t *testing.T) {
	h, err := NewHolder(t.Context(), Options{
		Path:    writeDoc(t, "rc.toml", minimalScreen),
		Display: display.NewHeadless(1),
		Logger:  logging.NewDiscard(),
	})
	if err != nil {
		t.Fatalf("NewHolder() error = %v", err)
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 50 {
				if rt := h.Runtime(); rt == nil || len(rt.Screens) != 1 {
					t.Error("reader saw an incomplete runtime")
					return
				}
			}
		})
	}
	for range 5 {
		if _, err := h.Reload(t.Context()); err != nil {
			t.Errorf("Reload() error = %v", err)
		}
	}
	wg.Wait()
}

func TestNewHolder_Error(t *testing.T) {
	if _, err := NewHolder(t.Context(), Options{}); err == nil {
		t.Error("NewHolder() without a display should fail")
	}
}
