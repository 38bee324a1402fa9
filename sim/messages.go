package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Message is a two-line status note shown under the simulated panel.
type Message struct {
	Line1 string
	Line2 string
}

// send queues a message without blocking. If the channel is full the message
// is dropped.
func send(messages chan<- Message, line1, line2 string) {
	select {
	case messages <- Message{Line1: line1, Line2: line2}:
	default:
	}
}

// messageHandler is a slog.Handler that turns log records into Messages:
// the record message on the first line, its attributes on the second.
type messageHandler struct {
	messages chan<- Message
	level    slog.Leveler
	attrs    []slog.Attr
}

func newMessageHandler(messages chan<- Message, level slog.Leveler) *messageHandler {
	return &messageHandler{messages: messages, level: level}
}

func (h *messageHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *messageHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	write := func(a slog.Attr) bool {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	send(h.messages, r.Level.String()+" "+r.Message, b.String())
	return nil
}

func (h *messageHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &next
}

// WithGroup is not needed by the loop's logging; groups are flattened.
func (h *messageHandler) WithGroup(string) slog.Handler {
	return h
}
