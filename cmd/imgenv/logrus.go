package main

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// logBridge is an adaptor that turns logrus log entries into slog log entries,
// so that diagnostics from this program and from any library logging through
// logrus share one stderr format.

type logBridge struct {
	handler slog.Handler
}

func newLogBridge(logger *slog.Logger) *logBridge {
	return &logBridge{
		handler: logger.Handler(),
	}
}

// slogLevel maps a logrus level to the slog level used for the record.
func slogLevel(ll logrus.Level) slog.Level {
	switch ll {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel: // We don't care to distinguish panic/fatal, that's going to be visible by behavior
		return slog.LevelError
	case logrus.WarnLevel:
		return slog.LevelWarn
	case logrus.DebugLevel, logrus.TraceLevel:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// recordFromLogrusLine parses one logrus text-formatter line into a slog record.
func recordFromLogrusLine(p []byte) slog.Record {
	level := slog.LevelInfo
	rest := p
	if levelField, ok := bytes.CutPrefix(rest, []byte("level=")); ok {
		if levelBytes, tail, ok := bytes.Cut(levelField, []byte(" ")); ok {
			var ll logrus.Level
			if err := ll.UnmarshalText(levelBytes); err == nil {
				level = slogLevel(ll)
				rest = tail
			}
		}
	}

	// Try to unquote the message
	if msgField, ok := bytes.CutPrefix(rest, []byte("msg=")); ok {
		rest = msgField
		if bytes.HasPrefix(msgField, []byte(`"`)) {
			msgString := string(msgField)
			if quotedMsg, err := strconv.QuotedPrefix(msgString); err == nil {
				if msg, err := strconv.Unquote(quotedMsg); err == nil {
					rest = append([]byte(msg), msgField[len(quotedMsg):]...)
				}
			}
			// If any of the above fails, rest is something like, but not quite, "..." other-fields, not ideal but good enough
		} // else rest starts with the message text as is, and continues with other fields, just the way we want.
	}

	// The original timestamp is not re-parsed; the record carries its own.
	// We don't care about pc, we are not including it in the output.
	return slog.NewRecord(time.Now(), level, string(rest), 0)
}

// Write processes one logrus entry.
// This relies on the fact that logrus submits the entry as a single Write
// (which makes sense, to avoid log interleaving with other output; and anyway
// logrus is not changing much nowadays)
func (b *logBridge) Write(p []byte) (int, error) {
	record := recordFromLogrusLine(bytes.TrimRight(p, "\n"))

	ctx := context.Background()
	var err error = nil
	if b.handler.Enabled(ctx, record.Level) {
		err = b.handler.Handle(ctx, record)
	}
	return len(p), err
}
