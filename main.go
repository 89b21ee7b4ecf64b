package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"eventbook/config"
	"eventbook/service"
	"eventbook/tracing"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Stdout.WriteString(flagsErr.Message + "\n")
			return
		}
		logrus.WithError(err).Fatal("invalid configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("invalid log level")
	}
	logrus.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.JaegerEndpoint != "" {
		tp, err := tracing.ConfigureTraceProvider(cfg.JaegerEndpoint)
		if err != nil {
			logrus.WithError(err).Fatal("failed to configure tracing")
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logrus.WithError(err).Warn("failed to shut down trace provider")
			}
		}()
	}

	app := service.New(cfg, os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		logrus.WithError(err).Fatal("client terminated")
	}
}
