package notifier

import "context"

// Notifier delivers a rendered report.
type Notifier interface {
	Send(ctx context.Context, subject, htmlBody string) error
	SendWithRetry(ctx context.Context, subject, htmlBody string, maxRetries int) error
}

// NoopNotifier discards reports. Used for dry runs.
type NoopNotifier struct{}

func (NoopNotifier) Send(_ context.Context, _, _ string) error { return nil }

func (NoopNotifier) SendWithRetry(_ context.Context, _, _ string, _ int) error { return nil }
