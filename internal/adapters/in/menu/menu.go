// Package menu is the interactive text interface of the dispatch registry.
//
// A session starts with AskInitialFleet, which reads the vehicle numbers of the
// initial fleet, and continues with Menu.Run, which loops over the options until the
// user quits or the input ends.
package menu

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

const (
	optionQuit = "6"

	tableIndent = 10
	tableGap    = 10
)

// AskInitialFleet asks how many vehicles the fleet starts with and then the number of
// each one.
func AskInitialFleet(console *Console) ([]int, error) {
	count, err := console.AskInt("Enter number of initial vehicles: ",
		"You had to enter a positive integer.", nonNegative)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		number, err := console.AskInt("Enter the number of "+ordinal(i)+" vehicle: ",
			"You had to enter a positive integer.", positive)
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, number)
	}

	return numbers, nil
}

// Menu runs the options against the application handlers.
type Menu struct {
	console *Console

	placeOrderHandler commands.PlaceOrderCommandHandler
	addVehicleHandler commands.AddVehicleCommandHandler

	trackOrderHandler     queries.TrackOrderQueryHandler
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler
	getAllOrdersHandler   queries.GetAllOrdersQueryHandler

	logger *slog.Logger
}

func New(
	console *Console,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addVehicleHandler commands.AddVehicleCommandHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *Menu {
	return &Menu{
		console:               console,
		placeOrderHandler:     placeOrderHandler,
		addVehicleHandler:     addVehicleHandler,
		trackOrderHandler:     trackOrderHandler,
		getAllVehiclesHandler: getAllVehiclesHandler,
		getAllOrdersHandler:   getAllOrdersHandler,
		logger:                logger.With("component", "menu"),
	}
}

// Run shows the menu until the user picks Quit or the input ends. Unknown options are
// reported on the next redraw. Only input and handler failures are returned.
func (m *Menu) Run(ctx context.Context) error {
	actions := map[string]func(context.Context) error{
		"1": m.listVehicles,
		"2": m.addVehicle,
		"3": m.listOrders,
		"4": m.placeOrder,
		"5": m.trackOrder,
	}

	enteredInvalid := false
	for {
		m.console.Clear()
		m.display()
		if enteredInvalid {
			m.console.Print("You've entered an invalid option.")
		}

		option, err := m.console.Ask("\nEnter an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		option = strings.TrimSpace(option)
		if option == optionQuit {
			return nil
		}

		action, ok := actions[option]
		if !ok {
			enteredInvalid = true
			continue
		}

		enteredInvalid = false
		m.console.Clear()
		if err = action(ctx); err != nil {
			return ignoreEOF(err)
		}

		if _, err = m.console.Ask("\nPress enter to continue..."); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) display() {
	m.console.Println("Logistics system menu")
	m.console.Println()
	m.console.Println("1. Show all vehicles")
	m.console.Println("2. Add new vehicle")
	m.console.Println("3. Show all orders")
	m.console.Println("4. Place order")
	m.console.Println("5. Track order")
	m.console.Println("6. Quit")
}

func (m *Menu) listVehicles(ctx context.Context) error {
	vehicles, err := m.getAllVehiclesHandler.Handle(ctx, queries.NewGetAllVehiclesQuery())
	if err != nil {
		return err
	}

	if len(vehicles) == 0 {
		m.console.Println("There are no vehicles yet.")
		return nil
	}

	m.console.Println("The following are vehicles in logistics system: ")
	m.console.Print(vehicleTable(vehicles))
	return nil
}

func (m *Menu) addVehicle(ctx context.Context) error {
	answer, err := m.console.Ask("Enter number of new vehicle: ")
	if err != nil {
		return err
	}

	number, err := parseInt(answer)
	if err != nil {
		m.console.Println("You had to enter an integer.")
		return nil
	}
	if number < 0 {
		m.console.Println("You had to enter a nonnegative integer.")
		return nil
	}

	cmd, err := commands.NewAddVehicleCommand(number)
	if err != nil {
		return err
	}
	if err = m.addVehicleHandler.Handle(ctx, cmd); err != nil {
		return err
	}

	m.console.Printf("New vehicle with number %d successfully added!\n", number)
	return nil
}

func (m *Menu) listOrders(ctx context.Context) error {
	orders, err := m.getAllOrdersHandler.Handle(ctx, queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		m.console.Println("There are no orders created yet.")
		return nil
	}

	m.console.Println("List of all orders in logistics system:")
	for i, o := range orders {
		m.console.Printf("%d) %s\n", i+1, o.Summary)
	}
	return nil
}

func (m *Menu) placeOrder(ctx context.Context) error {
	userName, err := m.console.Ask("Enter user name: ")
	if err != nil {
		return err
	}

	city, err := m.console.Ask("Enter city of destination point: ")
	if err != nil {
		return err
	}

	postoffice, err := m.console.AskInt("Enter number of postoffice in "+city+": ",
		"You had to enter a positive integer.", positive)
	if err != nil {
		return err
	}

	count, err := m.console.AskInt("Enter number of items to deliver: ",
		"You had to enter a nonnegative integer.", nonNegative)
	if err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, count)
	for i := 1; i <= count; i++ {
		line, err := m.askItem(ordinal(i))
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}
	m.console.Println()

	cmd, err := commands.NewPlaceOrderCommand(userName, city, postoffice, lines)
	if err != nil {
		return err
	}

	orderID, err := m.placeOrderHandler.Handle(ctx, cmd)
	switch {
	case errors.Is(err, services.ErrNoVehicleAvailable):
		m.console.Printf("Your order number is %d.\n", orderID)
		m.console.Println("There is no available vehicle to deliver an order.")
		m.logger.InfoContext(ctx, "Order rejected", "orderId", orderID)
		return nil
	case err != nil:
		return err
	}

	m.console.Printf("Your order number is %d.\n", orderID)
	return nil
}

func (m *Menu) askItem(nth string) (commands.OrderLine, error) {
	for {
		name, err := m.console.Ask("\nEnter name of the " + nth + " item: ")
		if err != nil {
			return commands.OrderLine{}, err
		}

		answer, err := m.console.Ask("Enter price of the " + nth + " item: ")
		if err != nil {
			return commands.OrderLine{}, err
		}

		price, err := decimal.NewFromString(strings.TrimSpace(answer))
		if err == nil && !price.IsNegative() {
			return commands.OrderLine{Name: name, Price: price}, nil
		}
		m.console.Println("You had to enter a nonnegative real number.")
	}
}

func (m *Menu) trackOrder(ctx context.Context) error {
	orderID, err := m.console.AskInt("Enter id of an order to track: ",
		"You had to enter a nonnegative integer.", nonNegative)
	if err != nil {
		return err
	}

	query, err := queries.NewTrackOrderQuery(orderID)
	if err != nil {
		return err
	}

	tracking, err := m.trackOrderHandler.Handle(ctx, query)
	if errors.Is(err, queries.ErrOrderNotFound) {
		m.console.Println("No such order.")
		return nil
	}
	if err != nil {
		return err
	}

	m.console.Printf("Your order #%d is sent to %s. Total price: %s UAH.\n",
		tracking.OrderID, tracking.City, tracking.Amount)
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
