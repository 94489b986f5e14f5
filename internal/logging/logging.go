// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"

	"minesweeper/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// New создаёт логгер, пишущий в out. Если в конфигурации задан LogFile,
// записи дополнительно уходят в файл с ротацией.
func New(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if cfg.LogFile == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.LogFile,
		MaxSize:    config.LogMaxSizeMB,
		MaxBackups: config.LogMaxBackups,
		MaxAge:     config.LogMaxAgeDays,
		Level:      cfg.Level(),
		Formatter:  &logrus.TextFormatter{DisableColors: true, FullTimestamp: true},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to set up log file %s: %w", cfg.LogFile, err)
	}
	log.AddHook(hook)

	return log, nil
}
