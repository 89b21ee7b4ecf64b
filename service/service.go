// Package service wires the gateway clients, screen controllers and
// navigator into a runnable terminal client.
package service

import (
	"bufio"
	"io"

	"github.com/sirupsen/logrus"

	"eventbook/booking"
	"eventbook/config"
	"eventbook/controller"
	"eventbook/gateway"
	"eventbook/navigation"
)

type App struct {
	nav *navigation.Navigator

	login        *controller.Login
	register     *controller.Register
	home         *controller.Home
	event        *controller.EventDetail
	payment      *controller.Payment
	confirmation *controller.Confirmation
	profile      *controller.Profile

	in     *bufio.Scanner
	out    io.Writer
	logger *logrus.Entry
}

func New(cfg config.Config, in io.Reader, out io.Writer) *App {
	logger := logrus.WithField("component", "eventbook")

	core := gateway.NewClient(
		cfg.APIURL,
		gateway.WithTimeout(cfg.RequestTimeout),
		gateway.WithLogger(logger),
	)
	auth := gateway.NewAuthClient(core)
	events := gateway.NewEventsClient(core)
	payments := gateway.NewPaymentClient(core)
	profiles := gateway.NewProfileClient(core)

	nav := navigation.New()
	saga := booking.NewOrchestrator(payments, booking.SimulatedProvider{}, logger)

	return &App{
		nav:          nav,
		login:        controller.NewLogin(auth, nav, logger),
		register:     controller.NewRegister(auth, nav, logger),
		home:         controller.NewHome(events, nav, logger, cfg.SearchDebounce),
		event:        controller.NewEventDetail(nav),
		payment:      controller.NewPayment(saga, nav, logger),
		confirmation: controller.NewConfirmation(nav),
		profile:      controller.NewProfile(profiles, nav, logger),
		in:           bufio.NewScanner(in),
		out:          out,
		logger:       logger,
	}
}
