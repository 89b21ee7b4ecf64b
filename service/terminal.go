package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"eventbook/controller"
	"eventbook/entity"
	"eventbook/navigation"
)

// Run drives the terminal frontend: render the active screen, read one
// command, dispatch it to the screen's controller, repeat. It returns on
// EOF, "quit", or context cancellation.
func (a *App) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for a.in.Scan() {
			select {
			case lines <- a.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	previous := a.nav.Current()
	a.mount(ctx, navigation.Route{}, previous)

	for {
		current := a.nav.Current()
		if current != previous {
			a.mount(ctx, previous, current)
			previous = current
		}
		a.render(current)

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "quit" {
				return nil
			}
			if line != "" {
				a.dispatch(ctx, a.nav.Current(), line)
			}
		}
	}
}

// mount runs screen lifecycle on transitions: data-dependent screens fetch
// on entry, the catalog stops its debounce timer on exit so late responses
// are no-ops.
func (a *App) mount(ctx context.Context, from, to navigation.Route) {
	if from.Screen == navigation.ScreenHome && to.Screen != navigation.ScreenHome {
		a.home.Unmount()
	}
	switch params := to.Params.(type) {
	case navigation.HomeParams:
		a.home.Mount(ctx, params)
	case navigation.ProfileParams:
		a.profile.Mount(ctx, params)
	}
}

func (a *App) dispatch(ctx context.Context, route navigation.Route, line string) {
	cmd, rest := splitCommand(line)

	switch params := route.Params.(type) {
	case navigation.LoginParams:
		switch cmd {
		case "login":
			email, password := splitCommand(rest)
			a.login.Submit(ctx, email, password)
		case "register":
			a.login.OpenRegister()
		default:
			a.printf("commands: login <email> <password> | register | quit")
		}

	case navigation.RegisterParams:
		switch cmd {
		case "register":
			fields := strings.Fields(rest)
			if len(fields) < 4 {
				a.printf("usage: register <name> <email> <password> <confirm> [phone]")
				return
			}
			form := controller.RegisterForm{
				Name:            fields[0],
				Email:           fields[1],
				Password:        fields[2],
				ConfirmPassword: fields[3],
			}
			if len(fields) > 4 {
				form.Phone = fields[4]
			}
			a.register.Submit(ctx, form)
		case "back":
			a.register.GoBack()
		default:
			a.printf("commands: register <name> <email> <password> <confirm> [phone] | back | quit")
		}

	case navigation.HomeParams:
		switch cmd {
		case "search":
			a.home.SetSearch(ctx, rest)
		case "cat":
			a.home.SelectCategory(ctx, normalizeCategory(rest))
		case "refresh":
			a.home.Refresh(ctx)
		case "open":
			idx, err := strconv.Atoi(rest)
			events := a.home.Events()
			if err != nil || idx < 1 || idx > len(events) {
				a.printf("usage: open <event number>")
				return
			}
			a.home.OpenEvent(events[idx-1])
		case "profile":
			a.home.OpenProfile()
		default:
			a.printf("commands: search <text> | cat <category> | open <n> | refresh | profile | quit")
		}

	case navigation.EventParams:
		switch cmd {
		case "book":
			if !a.event.Book(params) {
				a.printf("This event is sold out.")
			}
		case "back":
			a.event.GoBack()
		default:
			a.printf("commands: book | back | quit")
		}

	case navigation.PaymentParams:
		switch cmd {
		case "pay":
			a.payment.Pay(ctx, params)
		case "back":
			a.payment.GoBack()
		default:
			a.printf("commands: pay | back | quit")
		}

	case navigation.ConfirmationParams:
		switch cmd {
		case "bookings":
			a.confirmation.OpenBookings(params)
		case "home":
			a.confirmation.GoHome(params)
		default:
			a.printf("commands: bookings | home | quit")
		}

	case navigation.ProfileParams:
		switch cmd {
		case "signout":
			a.profile.SignOut()
		case "back":
			a.profile.GoBack()
		default:
			a.printf("commands: back | signout | quit")
		}
	}
}

func (a *App) render(route navigation.Route) {
	switch params := route.Params.(type) {
	case navigation.LoginParams:
		a.printf("== EventBook — Sign In ==")
		if params.Notice != "" {
			a.printf("%s", params.Notice)
		}
		a.renderErr(a.login.Err())

	case navigation.RegisterParams:
		a.printf("== Create Account ==")
		a.renderErr(a.register.Err())

	case navigation.HomeParams:
		a.printf("== Events — hello, %s ==", firstName(params.Session.Name))
		a.printf("filter: %q  category: %s", a.home.Search(), a.home.Category())
		events := a.home.Events()
		if len(events) == 0 {
			a.printf("No events found.")
		}
		for i, ev := range events {
			a.printf("%2d. %-45s %-10s %s  %s  (%d left)",
				i+1, ev.Title, ev.Category, formatPrice(ev.Price),
				ev.Date.Format("02 Jan 2006 15:04"), ev.AvailableSeats)
		}

	case navigation.EventParams:
		ev := params.Event
		a.printf("== %s ==", ev.Title)
		a.printf("%s", ev.Description)
		a.printf("%s | %s | %s", ev.Location, ev.Date.Format("Monday, 02 January 2006 15:04"), formatPrice(ev.Price))
		if ev.AvailableSeats == 0 {
			a.printf("SOLD OUT")
		} else {
			a.printf("%d seats left", ev.AvailableSeats)
		}

	case navigation.PaymentParams:
		ev := params.Event
		a.printf("== Checkout ==")
		a.printf("1x Ticket — %s", ev.Title)
		a.printf("Total: %s", formatPrice(ev.Price))
		a.printf("Running in test mode. No real money will be charged.")
		a.renderErr(a.payment.Err())

	case navigation.ConfirmationParams:
		a.printf("== Booking Confirmed! ==")
		a.printf("Booking ID: %s", params.BookingID)
		a.printf("Payment ID: %s", params.PaymentID)
		a.printf("%s — %s", params.Event.Title, formatPrice(params.Amount))

	case navigation.ProfileParams:
		a.printf("== Profile ==")
		if profile := a.profile.UserProfile(); profile != nil {
			a.printf("%s <%s>", profile.Name, profile.Email)
			a.printf("Member since %s", profile.CreatedAt.Format("02 Jan 2006"))
		}
		count, total := a.profile.Stats()
		a.printf("%d bookings, ₹%d spent", count, int64(total))
		for _, b := range a.profile.BookingList() {
			a.printf("- %-45s %-10s %s", b.Event.Title, b.Status, formatPrice(b.Amount))
		}
	}
	a.printf("> ")
}

func (a *App) renderErr(msg string) {
	if msg != "" {
		a.printf("!! %s", msg)
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	idx := strings.IndexByte(line, ' ')
	if idx < 0 {
		return line, ""
	}
	return line[:idx], strings.TrimSpace(line[idx+1:])
}

func normalizeCategory(input string) entity.Category {
	for _, c := range entity.Categories {
		if strings.EqualFold(string(c), strings.TrimSpace(input)) {
			return c
		}
	}
	return entity.CategoryAll
}

func formatPrice(p entity.Price) string {
	if p.Free() {
		return "FREE"
	}
	return fmt.Sprintf("₹%d", int64(p))
}

func firstName(name string) string {
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		return name[:idx]
	}
	return name
}
