package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type failingAssistant struct{}

func (failingAssistant) Reply(context.Context, string) (string, error) {
	return "", errors.New("boom")
}

func TestOfflineRepliesByKeyword(t *testing.T) {
	a := NewOfflineAssistant()

	out, err := a.Reply(context.Background(), "Bagaimana cara isi saldo?")
	if err != nil {
		t.Fatalf("offline reply errored: %v", err)
	}
	if !strings.Contains(out, "Dompet") {
		t.Fatalf("top-up question got %q", out)
	}

	out, _ = a.Reply(context.Background(), "mau pesan OJEG dong")
	if !strings.Contains(out, "Ojeg") {
		t.Fatalf("ride question got %q", out)
	}
}

func TestOfflineAlwaysAnswers(t *testing.T) {
	a := NewOfflineAssistant()
	out, err := a.Reply(context.Background(), "hmm")
	if err != nil || out == "" {
		t.Fatalf("generic question got (%q, %v)", out, err)
	}
}

func TestReplyOrFallbackSwallowsErrors(t *testing.T) {
	got := ReplyOrFallback(context.Background(), failingAssistant{}, "halo")
	if got != Fallback {
		t.Fatalf("fallback = %q", got)
	}
	got = ReplyOrFallback(context.Background(), NewOfflineAssistant(), "halo")
	if got == Fallback {
		t.Fatalf("healthy assistant produced the fallback")
	}
}

func TestOpenAIAssistantNeedsKey(t *testing.T) {
	a := NewOpenAIAssistant("", "")
	if _, err := a.Reply(context.Background(), "halo"); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("keyless reply error = %v, want ErrNoAPIKey", err)
	}
}
