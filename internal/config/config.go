// internal/config/config.go
package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"minesweeper/internal/board"

	"github.com/sirupsen/logrus"
)

const (
	DefaultRows  = 9
	DefaultCols  = 9
	DefaultMines = 10
	CellScale    = 32      // пикселей на клетку в окне
	MaxDimension = 1 << 12 // предел для -rows и -cols

	TerminalScale   = 1 // символов терминала на клетку
	TerminalOffsetY = 1 // строка статуса над полем

	WindowTitle = "Simple minesweeper"

	TileInset        = 1.0 // зазор между плитками
	TileStrokeWidth  = 1.0
	BannerPaddingX   = 16
	BannerPaddingY   = 10
	TerminalEventBuf = 16

	LogMaxSizeMB  = 5
	LogMaxBackups = 3
	LogMaxAgeDays = 7
)

var (
	BackgroundColor     = color.RGBA{0, 0, 0, 255}
	HiddenColor         = color.RGBA{255, 255, 255, 255}
	HiddenStrokeColor   = color.RGBA{200, 200, 200, 255}
	FlagColor           = color.RGBA{0, 200, 0, 255}
	MineColor           = color.RGBA{255, 0, 0, 255}
	RevealedColor       = color.RGBA{125, 125, 125, 255}
	RevealedStroke      = color.RGBA{200, 200, 200, 255}
	TextDarkColor       = color.RGBA{0, 0, 0, 255}
	TextLightColor      = color.RGBA{255, 255, 255, 255}
	BannerBackdropColor = color.RGBA{0, 0, 0, 160}
)

// Config — параметры запуска, задаются флагами командной строки.
type Config struct {
	Rows    int
	Cols    int
	Mines   int
	Scale   int
	Seed    uint64
	Debug   bool
	LogFile string
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		Rows:  DefaultRows,
		Cols:  DefaultCols,
		Mines: DefaultMines,
		Scale: CellScale,
	}
}

// Load разбирает аргументы командной строки (без имени программы).
func Load(name string, args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "number of rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "number of columns")
	fs.IntVar(&cfg.Mines, "mines", cfg.Mines, "number of mines")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per cell")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 = time based)")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write logs to a rotating file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет, что по конфигурации можно построить поле.
func (c Config) Validate() error {
	var errs []error
	if c.Rows <= 0 || c.Cols <= 0 {
		errs = append(errs, fmt.Errorf("%w: rows and cols must be positive, got %dx%d", board.ErrInvalidConfiguration, c.Rows, c.Cols))
	} else if c.Rows > MaxDimension || c.Cols > MaxDimension {
		errs = append(errs, fmt.Errorf("%w: rows and cols must not exceed %d, got %dx%d", board.ErrInvalidConfiguration, MaxDimension, c.Rows, c.Cols))
	} else if c.Mines < 0 || c.Mines >= c.Rows*c.Cols {
		errs = append(errs, fmt.Errorf("%w: mines must be in [0, %d), got %d", board.ErrInvalidConfiguration, c.Rows*c.Cols, c.Mines))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: scale must be positive, got %d", board.ErrInvalidConfiguration, c.Scale))
	}
	return errors.Join(errs...)
}

// Level возвращает уровень логирования.
func (c Config) Level() logrus.Level {
	if c.Debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// Fields — конфигурация в виде полей лога.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"rows":    c.Rows,
		"cols":    c.Cols,
		"mines":   c.Mines,
		"scale":   c.Scale,
		"seed":    c.Seed,
		"debug":   c.Debug,
		"logFile": c.LogFile,
	}
}
