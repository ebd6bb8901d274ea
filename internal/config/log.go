package config

import "log/slog"

type Log struct {
	Level       slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format      string     `env:"LOG_FORMAT" envDefault:"text"`
	FieldMaxLen int        `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
}
