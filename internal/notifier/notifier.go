package notifier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"proof-timeline/internal/verification"
	pkgLog "proof-timeline/pkg/log"
)

const defaultSendTimeout = 10 * time.Second

// Sender delivers a text message to a chat. *telegram.Bot satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type telegramNotifier struct {
	l       pkgLog.Logger
	sender  Sender
	chatID  int64
	timeout time.Duration
}

// NewTelegram sends every event to chatID in the background. Send failures
// are logged and dropped.
func NewTelegram(l pkgLog.Logger, sender Sender, chatID int64, timeout time.Duration) verification.Notifier {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &telegramNotifier{
		l:       l,
		sender:  sender,
		chatID:  chatID,
		timeout: timeout,
	}
}

func (n *telegramNotifier) Notify(ctx context.Context, ev verification.Event) {
	text := Format(ev)
	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		if err := n.sender.SendMessage(sendCtx, n.chatID, text); err != nil {
			n.l.Warnf(sendCtx, "notifier.telegram.Notify: failed to send %s event for task %s: %v", ev.Type, ev.TaskID, err)
		}
	}()
}

type logNotifier struct {
	l pkgLog.Logger
}

// NewLog writes events to the logger. Used when no Telegram bot is configured.
func NewLog(l pkgLog.Logger) verification.Notifier {
	return &logNotifier{l: l}
}

func (n *logNotifier) Notify(ctx context.Context, ev verification.Event) {
	n.l.Infof(ctx, "notifier.log.Notify: %s", Format(ev))
}

// Format renders an event as a short chat message.
func Format(ev verification.Event) string {
	title := ev.TaskTitle
	if title == "" {
		title = ev.TaskID
	}

	var b strings.Builder
	switch ev.Type {
	case verification.EventWindowOpened:
		fmt.Fprintf(&b, "📸 %s: time for the %s photo", title, ev.Kind)
	case verification.EventVerified:
		fmt.Fprintf(&b, "✅ %s: %s verified", title, ev.Kind)
	case verification.EventRejected:
		fmt.Fprintf(&b, "❌ %s: %s photo rejected (attempt %d)", title, ev.Kind, ev.Attempt)
	case verification.EventFailed:
		fmt.Fprintf(&b, "⛔ %s: %s verification failed", title, ev.Kind)
	case verification.EventTimedOut:
		fmt.Fprintf(&b, "⏰ %s: %s window timed out", title, ev.Kind)
	default:
		fmt.Fprintf(&b, "%s: %s %s", title, ev.Kind, ev.Type)
	}
	if ev.Message != "" {
		b.WriteString("\n")
		b.WriteString(ev.Message)
	}
	return b.String()
}
