package browser

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewChromeDefaults(t *testing.T) {
	c := NewChrome(zerolog.Nop())

	if c.homepage != DefaultHomepage {
		t.Errorf("homepage = %q, want %q", c.homepage, DefaultHomepage)
	}
	if c.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %q, want %q", c.userAgent, DefaultUserAgent)
	}
	if !c.headless {
		t.Error("expected headless by default")
	}
	if c.settleTime != DefaultSettleTime {
		t.Errorf("settleTime = %v, want %v", c.settleTime, DefaultSettleTime)
	}
	if c.windowWidth != 1920 || c.windowHeight != 1080 {
		t.Errorf("window = %dx%d, want 1920x1080", c.windowWidth, c.windowHeight)
	}
}

func TestNewChromeOptions(t *testing.T) {
	c := NewChrome(zerolog.Nop(),
		WithHomepage("https://example.com"),
		WithUserAgent("test-agent"),
		WithHeadless(false),
		WithSettleTime(3*time.Second),
		WithWindowSize(800, 600),
	)

	if c.homepage != "https://example.com" {
		t.Errorf("homepage = %q", c.homepage)
	}
	if c.userAgent != "test-agent" {
		t.Errorf("userAgent = %q", c.userAgent)
	}
	if c.headless {
		t.Error("expected headful")
	}
	if c.settleTime != 3*time.Second {
		t.Errorf("settleTime = %v", c.settleTime)
	}
	if c.windowWidth != 800 || c.windowHeight != 600 {
		t.Errorf("window = %dx%d", c.windowWidth, c.windowHeight)
	}
}
