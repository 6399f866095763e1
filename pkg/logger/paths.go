/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
)

// FindWritableLogPath returns the first log file location this process can
// write to, preferring the user state directory over a temp fallback.
func FindWritableLogPath() (string, error) {
	candidates := []string{}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".local", "state", "spartanpass", "spartanpass.log"))
	}
	candidates = append(candidates, filepath.Join(os.TempDir(), "spartanpass.log"))

	var lastErr error
	for _, path := range candidates {
		if err := ensureLogFile(path); err != nil {
			lastErr = err
			continue
		}
		return path, nil
	}
	return "", lastErr
}

// GetLogFileWriter opens the log file for appending.
func GetLogFileWriter(path string) (zapcore.WriteSyncer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	return zapcore.AddSync(f), nil
}

func ensureLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	return f.Close()
}
