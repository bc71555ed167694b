// Пакет ctxmeta — нейтральный слой для метаданных, которые прокидываются
// через context.Context: request_id локального API, id водителя сессии и
// источник realtime-события. HTTP-слой, realtime и логгер зависят от него,
// но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyDriverID  ctxKey = "driver_id"
	KeySource    ctxKey = "source"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return from(ctx, KeyRequestID)
}

// WithDriverID — id водителя активной сессии.
func WithDriverID(ctx context.Context, driverID string) context.Context {
	return with(ctx, KeyDriverID, driverID)
}

func DriverIDFromContext(ctx context.Context) (string, bool) {
	return from(ctx, KeyDriverID)
}

// WithSource — откуда пришло изменение: websocket, kafka, rest, api.
func WithSource(ctx context.Context, source string) context.Context {
	return with(ctx, KeySource, source)
}

func SourceFromContext(ctx context.Context) (string, bool) {
	return from(ctx, KeySource)
}

func with(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func from(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
