package notifier

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"proof-timeline/internal/verification"
	pkgLog "proof-timeline/pkg/log"
)

type fakeSender struct {
	sent chan string
	err  error
}

func (f *fakeSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	f.sent <- text
	return f.err
}

func TestTelegramNotify(t *testing.T) {
	tcs := map[string]struct {
		err error
	}{
		"delivered":   {},
		"send failed": {err: errors.New("telegram down")},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			s := &fakeSender{sent: make(chan string, 1), err: tc.err}
			n := NewTelegram(pkgLog.NewNop(), s, 42, time.Second)

			// A cancelled caller context must not stop the send.
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			n.Notify(ctx, verification.Event{
				Type:      verification.EventTimedOut,
				TaskTitle: "cook",
				Kind:      verification.KindStart,
			})

			select {
			case text := <-s.sent:
				if !strings.Contains(text, "cook") || !strings.Contains(text, "timed out") {
					t.Errorf("unexpected text: %q", text)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("message was not sent")
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tcs := map[string]struct {
		ev   verification.Event
		want []string
	}{
		"rejected with reason": {
			ev:   verification.Event{Type: verification.EventRejected, TaskTitle: "gym", Kind: verification.KindCompletion, Attempt: 2, Message: "missing exercise"},
			want: []string{"gym", "completion", "attempt 2", "missing exercise"},
		},
		"falls back to task id": {
			ev:   verification.Event{Type: verification.EventVerified, TaskID: "t-1", Kind: verification.KindStart},
			want: []string{"t-1", "start verified"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := Format(tc.ev)
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("Format() = %q, missing %q", got, w)
				}
			}
		})
	}
}
