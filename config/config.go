package config

import (
	"time"

	"github.com/jessevdk/go-flags"
)

type Config struct {
	APIURL         string        `long:"api-url" env:"EVENTBOOK_API_URL" default:"http://localhost:8000" description:"Event Booking API origin"`
	LogLevel       string        `long:"log-level" env:"EVENTBOOK_LOG_LEVEL" default:"info" description:"logrus level"`
	JaegerEndpoint string        `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" description:"jaeger collector endpoint; empty disables tracing"`
	SearchDebounce time.Duration `long:"search-debounce" env:"EVENTBOOK_SEARCH_DEBOUNCE" default:"500ms" description:"quiescent window before a search fires"`
	RequestTimeout time.Duration `long:"request-timeout" env:"EVENTBOOK_REQUEST_TIMEOUT" default:"30s" description:"per-request HTTP timeout"`
}

func Parse(args []string) (Config, error) {
	var cfg Config
	if _, err := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash).ParseArgs(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
