package config

import (
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/rmorlok/graphbrowser/internal/aplog"
	"github.com/rmorlok/graphbrowser/internal/util"
)

type LoggingConfigText struct {
	Type   LoggingConfigType   `json:"type" yaml:"type"`
	To     LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level  LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source bool                `json:"source,omitempty" yaml:"source,omitempty"`
}

func (l *LoggingConfigText) GetType() LoggingConfigType {
	return LoggingConfigTypeText
}

func (l *LoggingConfigText) GetRootLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(l.To.Output(), &slog.HandlerOptions{
		Level:     l.Level.Level(),
		AddSource: l.Source,
	}))
}

type LoggingConfigJson struct {
	Type   LoggingConfigType   `json:"type" yaml:"type"`
	To     LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level  LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source bool                `json:"source,omitempty" yaml:"source,omitempty"`
}

func (l *LoggingConfigJson) GetType() LoggingConfigType {
	return LoggingConfigTypeJson
}

func (l *LoggingConfigJson) GetRootLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(l.To.Output(), &slog.HandlerOptions{
		Level:     l.Level.Level(),
		AddSource: l.Source,
	}))
}

type LoggingConfigTint struct {
	Type       LoggingConfigType   `json:"type" yaml:"type"`
	To         LoggingConfigOutput `json:"to,omitempty" yaml:"to,omitempty"`
	Level      LoggingConfigLevel  `json:"level,omitempty" yaml:"level,omitempty"`
	Source     bool                `json:"source,omitempty" yaml:"source,omitempty"`
	NoColor    *bool               `json:"no_color,omitempty" yaml:"no_color,omitempty"`
	TimeFormat *string             `json:"time_format,omitempty" yaml:"time_format,omitempty"`
}

func (l *LoggingConfigTint) GetType() LoggingConfigType {
	return LoggingConfigTypeTint
}

func (l *LoggingConfigTint) GetRootLogger() *slog.Logger {
	timeFormat := util.CoerceOr(l.TimeFormat, time.Kitchen)
	if timeFormat == "" {
		timeFormat = time.Kitchen
	}

	return slog.New(tint.NewHandler(l.To.Output(), &tint.Options{
		Level:      l.Level.Level(),
		AddSource:  l.Source,
		NoColor:    util.Coerce(l.NoColor),
		TimeFormat: timeFormat,
	}))
}

type LoggingConfigNone struct {
	Type LoggingConfigType `json:"type" yaml:"type"`
}

func (l *LoggingConfigNone) GetType() LoggingConfigType {
	return LoggingConfigTypeNone
}

func (l *LoggingConfigNone) GetRootLogger() *slog.Logger {
	return aplog.NewNoopLogger()
}
