package speech

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sahas-01/ChefGPT/internal/config"
	"github.com/sahas-01/ChefGPT/internal/sarvam"
)

type fakeSynth struct {
	lastText string
	lastOpts sarvam.SynthesizeOpts
}

func (f *fakeSynth) Synthesize(_ context.Context, text string, opts sarvam.SynthesizeOpts) (string, error) {
	f.lastText = text
	f.lastOpts = opts
	return "YXVkaW8=", nil
}

func ttsConfig() config.TTSConfig {
	return config.TTSConfig{MaxChars: 500, Speaker: "shubh", SampleRate: 8000}
}

func TestNarrateDefaults(t *testing.T) {
	fake := &fakeSynth{}
	n := NewNarrator(fake, ttsConfig())

	audio, err := n.Narrate(context.Background(), "नमस्ते", "", "")
	if err != nil {
		t.Fatalf("Narrate returned error: %v", err)
	}
	if audio != "YXVkaW8=" {
		t.Errorf("audio = %q", audio)
	}
	if fake.lastOpts.Language != DefaultLanguage {
		t.Errorf("language = %q, want %q", fake.lastOpts.Language, DefaultLanguage)
	}
	if fake.lastOpts.Speaker != "shubh" {
		t.Errorf("speaker = %q, want configured default", fake.lastOpts.Speaker)
	}
	if fake.lastOpts.SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", fake.lastOpts.SampleRate)
	}
}

func TestNarrateExplicitVoice(t *testing.T) {
	fake := &fakeSynth{}
	n := NewNarrator(fake, ttsConfig())

	if _, err := n.Narrate(context.Background(), "vanakkam", "ta-IN", "anushka"); err != nil {
		t.Fatalf("Narrate returned error: %v", err)
	}
	if fake.lastOpts.Language != "ta-IN" || fake.lastOpts.Speaker != "anushka" {
		t.Errorf("opts = %+v, caller choices should win", fake.lastOpts)
	}
}

func TestNarrateTruncation(t *testing.T) {
	fake := &fakeSynth{}
	n := NewNarrator(fake, ttsConfig())

	t.Run("LongInput", func(t *testing.T) {
		long := strings.Repeat("क", 600)
		if _, err := n.Narrate(context.Background(), long, "hi-IN", ""); err != nil {
			t.Fatalf("Narrate returned error: %v", err)
		}
		if got := utf8.RuneCountInString(fake.lastText); got != 500 {
			t.Errorf("submitted text is %d runes, want 500", got)
		}
		if !strings.HasSuffix(fake.lastText, "...") {
			t.Error("truncated text should end with an ellipsis marker")
		}
		if !strings.HasPrefix(fake.lastText, strings.Repeat("क", 497)) {
			t.Error("truncation should keep the leading 497 runes")
		}
	})

	t.Run("AtLimit", func(t *testing.T) {
		exact := strings.Repeat("a", 500)
		if _, err := n.Narrate(context.Background(), exact, "hi-IN", ""); err != nil {
			t.Fatalf("Narrate returned error: %v", err)
		}
		if fake.lastText != exact {
			t.Error("text at the limit should pass through untouched")
		}
	})
}
