package mapfile

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/eak1mov/go-tilemap/tile"
)

// ReadFile decodes the map stored at filePath.
func ReadFile(filePath string, format Format) (*tile.Grid, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, ioError(err)
	}
	defer file.Close()

	return Decode(file, format)
}

type writeConfig struct {
	Logger *slog.Logger
}

type WriteOption func(*writeConfig)

func WithLogger(logger *slog.Logger) WriteOption {
	return func(c *writeConfig) { c.Logger = logger }
}

// WriteFile encodes g into a temporary file next to filePath and then
// replaces filePath with it. If anything fails, filePath is left untouched.
func WriteFile(filePath string, g *tile.Grid, format Format, opts ...WriteOption) (err error) {
	config := writeConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&config)
	}

	file, err := os.CreateTemp(filepath.Dir(filePath), "."+filepath.Base(filePath)+".*.tmp")
	if err != nil {
		return ioError(err)
	}
	tempPath := file.Name()
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tempPath)
		}
	}()

	if err = file.Chmod(0644); err != nil {
		return ioError(err)
	}

	config.Logger.Debug("mapfile: encode", "path", tempPath, "format", format, "width", g.Width(), "height", g.Height())
	if err = Encode(file, g, format); err != nil {
		if !errors.Is(err, ErrFormat) {
			err = ioError(err)
		}
		return err
	}

	config.Logger.Debug("mapfile: sync")
	if err = file.Sync(); err != nil {
		return ioError(err)
	}
	if err = file.Close(); err != nil {
		return ioError(err)
	}

	config.Logger.Debug("mapfile: replace", "path", filePath)
	if err = os.Rename(tempPath, filePath); err != nil {
		return ioError(err)
	}

	config.Logger.Debug("mapfile: done!")
	return nil
}
