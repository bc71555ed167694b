// Пакет prefs — локальные настройки водителя в TOML-файле:
// сохранённая сессия и параметры звука уведомлений.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/driver_sync/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

// Prefs — содержимое файла настроек.
type Prefs struct {
	UserID       string  `toml:"user_id"`
	SessionToken string  `toml:"session_token"`
	SoundEnabled bool    `toml:"sound_enabled"`
	Volume       float64 `toml:"volume"`
}

const (
	defaultPrefsPath = "~/.config/driver-agent/prefs.toml"
	defaultVolume    = 0.7
)

// ErrMalformed — файл есть, но не разбирается; возвращаются значения по умолчанию.
var ErrMalformed = errors.New("malformed preferences file")

// Default — настройки до первого входа.
func Default() Prefs {
	return Prefs{SoundEnabled: true, Volume: defaultVolume}
}

// DefaultPath — путь к файлу по умолчанию.
func DefaultPath() string { return defaultPrefsPath }

// Session — сохранённая сессия (может быть невалидной).
func (p Prefs) Session() domain.Session {
	return domain.Session{UserID: domain.ID(strings.TrimSpace(p.UserID)), Token: strings.TrimSpace(p.SessionToken)}
}

// WithSession — копия с данными сессии; пустая сессия очищает поля.
func (p Prefs) WithSession(s domain.Session) Prefs {
	p.UserID = s.UserID.String()
	p.SessionToken = s.Token
	return p
}

// Normalize — громкость в диапазоне 0..1.
func (p Prefs) Normalize() Prefs {
	switch {
	case p.Volume < 0:
		p.Volume = 0
	case p.Volume > 1:
		p.Volume = 1
	}
	return p
}

// Load — чтение настроек; отсутствующий файл даёт значения по умолчанию.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), err
	}

	raw, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(raw, &p); err != nil {
		return Default(), fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return p.Normalize(), nil
}

// Save — запись через временный файл и rename; каталоги создаются при необходимости.
// Файл содержит токен, поэтому права 0600.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw, err := toml.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*.toml")
	if err != nil {
		return fmt.Errorf("create temp prefs: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write prefs: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod prefs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close prefs: %w", err)
	}
	if err := os.Rename(tmpName, resolved); err != nil {
		return fmt.Errorf("replace prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
