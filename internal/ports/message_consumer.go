package ports

import "context"

// MessageConsumer — источник realtime-событий (WebSocket или Kafka).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

// EventHandler — получатель сырых realtime-сообщений.
// domain.ErrInvalidEvent означает, что сообщение нужно пропустить.
type EventHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}
