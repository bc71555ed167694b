package domain

import "errors"

var (
	// ErrUnauthorized — сервер ответил 401; сессию нужно закрыть.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoSession — нет userId/sessionToken, операции с кэшем невозможны.
	ErrNoSession = errors.New("no active session")
	// ErrInvalidEvent — realtime-сообщение не удалось разобрать.
	ErrInvalidEvent = errors.New("invalid realtime event")
	// ErrUnknownCollection — неизвестное имя коллекции.
	ErrUnknownCollection = errors.New("unknown collection")
	// ErrRealtimeUnavailable — realtime-канал исчерпал попытки переподключения.
	ErrRealtimeUnavailable = errors.New("realtime channel unavailable")
)
