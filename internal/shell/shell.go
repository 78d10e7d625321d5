package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
	"github.com/rinserepeat/ordertrack/internal/service"
)

type OrderServiceI interface {
	Orders(ctx context.Context) ([]models.Order, error)
	OrdersWithStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	OrderByID(ctx context.Context, id int) (*models.Order, error)
	CustomerForOrder(ctx context.Context, orderID int) (*models.Customer, error)
	PriceList(ctx context.Context) (models.PriceList, error)
	CreateOrder(ctx context.Context, customer service.CustomerInfo, itemCounts map[string]int) (*models.Order, error)
	TransitionAll(ctx context.Context, orders []models.Order, target models.OrderStatus) error
}

// errInputClosed marks end of input (ctrl-D); treated as a quiet quit.
var errInputClosed = errors.New("input closed")

// Shell is the interactive menu loop. Validation and not-found problems are
// reported and control returns to a menu; store failures propagate out of Run
// and end the session.
type Shell struct {
	service OrderServiceI
	in      *bufio.Scanner
	out     io.Writer
	prices  *models.PriceList
}

func New(orderService OrderServiceI, in io.Reader, out io.Writer) *Shell {
	return &Shell{service: orderService, in: bufio.NewScanner(in), out: out}
}

func (shell *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "Welcome to Rinse and Repeat dry cleaning")
	fmt.Fprintln(shell.out, "----------------------------------------")
	fmt.Fprintln(shell.out, "Enter menu commands (1 through 6) from the list below using the keyboard.")
	fmt.Fprintln(shell.out, "Press return to perform the command. To exit the program, enter 0 or Q.")

	if err := shell.mainLoop(ctx); err != nil && !errors.Is(err, errInputClosed) {
		return err
	}
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "Goodbye, have a fantastic day!")
	return nil
}

func (shell *Shell) mainLoop(ctx context.Context) error {
	for {
		shell.printMainMenu()
		line, err := shell.readLine("> ")
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		command, known := ParseCommand(line)
		if !known {
			fmt.Fprintln(shell.out, "Unknown command:", line)
			continue
		}
		if command == CommandQuit {
			return nil
		}
		fmt.Fprintln(shell.out, "")
		if err := shell.dispatch(ctx, command); err != nil {
			return err
		}
	}
}

func (shell *Shell) dispatch(ctx context.Context, command Command) error {
	switch command {
	case CommandNewOrder:
		return shell.enterNewOrder(ctx)
	case CommandFindOrder:
		return shell.findOrder(ctx)
	case CommandListDroppedOff:
		return shell.listOrders(ctx, models.StatusDroppedOff)
	case CommandListReadyForPickup:
		return shell.listOrders(ctx, models.StatusReadyForPickup)
	case CommandListPickedUp:
		return shell.listOrders(ctx, models.StatusPickedUp)
	case CommandListAll:
		return shell.listAllOrders(ctx)
	case CommandQuit:
	}
	return nil
}

func (shell *Shell) listOrders(ctx context.Context, status models.OrderStatus) error {
	orders, err := shell.service.OrdersWithStatus(ctx, status)
	if err != nil {
		return err
	}
	return shell.printOrders(ctx, orders)
}

func (shell *Shell) listAllOrders(ctx context.Context) error {
	orders, err := shell.service.Orders(ctx)
	if err != nil {
		return err
	}
	return shell.printOrders(ctx, orders)
}

func (shell *Shell) findOrder(ctx context.Context) error {
	line, err := shell.readLine("Order ID: ")
	if err != nil {
		return err
	}
	id, parseErr := ParseOrderID(line)
	if parseErr != nil {
		message := parseErr.Error()
		if custom, ok := customerror.AsCustom(parseErr); ok {
			message = custom.UserMessage()
		}
		fmt.Fprintln(shell.out, "Invalid order ID:", message)
		return nil
	}
	fmt.Fprintln(shell.out, "")
	return shell.editOrder(ctx, id)
}

// editOrder runs the single-order submenu until the user goes back. The
// order is re-fetched and re-printed after every mutating command.
func (shell *Shell) editOrder(ctx context.Context, orderID int) error {
	reload := true
	var order models.Order
	for {
		if reload {
			current, err := shell.service.OrderByID(ctx, orderID)
			if customerror.IsNotFound(err) {
				fmt.Fprintln(shell.out, "Could not find an order with a matching ID.")
				return nil
			}
			if err != nil {
				return err
			}
			order = *current
			if err := shell.printOrders(ctx, []models.Order{order}); err != nil {
				return err
			}
			reload = false
		}

		shell.printEditMenu(order.Status)
		line, err := shell.readLine("> ")
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}
		command, known := ParseEditCommand(line)
		if !known {
			fmt.Fprintln(shell.out, "Unknown command:", line)
			fmt.Fprintln(shell.out, "")
			continue
		}
		fmt.Fprintln(shell.out, "")

		switch command {
		case EditBack:
			return nil
		case EditMarkReadyForPickup, EditMarkPickedUp:
			target := models.StatusReadyForPickup
			if command == EditMarkPickedUp {
				target = models.StatusPickedUp
			}
			if err := shell.service.TransitionAll(ctx, []models.Order{order}, target); err != nil {
				if custom, ok := customerror.AsCustom(err); ok {
					fmt.Fprintln(shell.out, custom.UserMessage())
					return nil
				}
				return err
			}
			reload = true
		case EditViewCustomer:
			customer, err := shell.service.CustomerForOrder(ctx, order.ID)
			if err != nil {
				if custom, ok := customerror.AsCustom(err); ok {
					fmt.Fprintln(shell.out, custom.UserMessage())
					continue
				}
				return err
			}
			shell.printCustomers([]models.Customer{*customer})
		}
	}
}

func (shell *Shell) enterNewOrder(ctx context.Context) error {
	prices, err := shell.priceList(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(shell.out, "Enter the number of items to clean, per item type.")
	counts := make(map[string]int, len(prices.Items))
	for _, item := range prices.Items {
		count, err := shell.promptCount(fmt.Sprintf("%s %s", item.Name, item.Price))
		if err != nil {
			return err
		}
		counts[item.Name] = count
	}

	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "Enter customer information.")
	name, err := shell.promptNonEmpty("Name")
	if err != nil {
		return err
	}
	email, err := shell.promptNonEmpty("Email")
	if err != nil {
		return err
	}
	mobile, err := shell.promptNonEmpty("Mobile")
	if err != nil {
		return err
	}

	order, err := shell.service.CreateOrder(ctx, service.CustomerInfo{Name: name, Email: email, Mobile: mobile}, counts)
	if err != nil {
		if custom, ok := customerror.AsCustom(err); ok {
			fmt.Fprintln(shell.out, custom.UserMessage())
			return nil
		}
		return err
	}
	fmt.Fprintln(shell.out, "")
	return shell.editOrder(ctx, order.ID)
}

// promptCount keeps asking until the line parses as a count.
func (shell *Shell) promptCount(prompt string) (int, error) {
	for {
		line, err := shell.readLine(prompt + ": ")
		if err != nil {
			return 0, err
		}
		count, parseErr := ParseCount(line)
		if parseErr == nil {
			return count, nil
		}
		fmt.Fprintln(shell.out, "Number of items must be a positive number or empty/zero.")
	}
}

// promptNonEmpty keeps asking until a non-empty line is entered.
func (shell *Shell) promptNonEmpty(prompt string) (string, error) {
	for {
		line, err := shell.readLine(prompt + ": ")
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(shell.out, "This field cannot be empty.")
	}
}

func (shell *Shell) readLine(prompt string) (string, error) {
	fmt.Fprintln(shell.out, prompt)
	if !shell.in.Scan() {
		if err := shell.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(shell.in.Text()), nil
}

// priceList caches the Prices worksheet; it is read-only reference data.
func (shell *Shell) priceList(ctx context.Context) (models.PriceList, error) {
	if shell.prices != nil {
		return *shell.prices, nil
	}
	prices, err := shell.service.PriceList(ctx)
	if err != nil {
		return models.PriceList{}, err
	}
	shell.prices = &prices
	return prices, nil
}

func (shell *Shell) printOrders(ctx context.Context, orders []models.Order) error {
	prices, err := shell.priceList(ctx)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(shell.out)
	header := []string{"ID", "Status", "Dropped off", "Ready for pickup", "Picked up", "Total"}
	header = append(header, prices.Names()...)
	table.SetHeader(header)
	for _, order := range orders {
		row := []string{
			strconv.Itoa(order.ID),
			string(order.Status),
			order.DroppedOffDate,
			order.ReadyForPickupDate,
			order.PickedUpDate,
			order.Total.String(),
		}
		for _, name := range prices.Names() {
			row = append(row, strconv.Itoa(order.ItemCounts[name]))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func (shell *Shell) printCustomers(customers []models.Customer) {
	table := tablewriter.NewWriter(shell.out)
	table.SetHeader([]string{"Order ID", "Name", "Email", "Mobile"})
	for _, customer := range customers {
		table.Append([]string{strconv.Itoa(customer.OrderID), customer.Name, customer.Email, customer.Mobile})
	}
	table.Render()
}

func (shell *Shell) printMainMenu() {
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "1: Enter a new order")
	fmt.Fprintln(shell.out, "2: Find order by ID")
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "3: List dropped off orders")
	fmt.Fprintln(shell.out, "4: List ready for pickup orders")
	fmt.Fprintln(shell.out, "5: List picked up orders")
	fmt.Fprintln(shell.out, "6: List all orders")
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "0: Quit")
	fmt.Fprintln(shell.out, "")
}

func (shell *Shell) printEditMenu(status models.OrderStatus) {
	fmt.Fprintln(shell.out, "")
	if status != models.StatusReadyForPickup {
		fmt.Fprintln(shell.out, "1: Mark as ready for pickup")
	}
	if status == models.StatusReadyForPickup {
		fmt.Fprintln(shell.out, "2: Mark as picked up")
	}
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "3: View customer information")
	fmt.Fprintln(shell.out, "")
	fmt.Fprintln(shell.out, "0: Back")
	fmt.Fprintln(shell.out, "")
}
