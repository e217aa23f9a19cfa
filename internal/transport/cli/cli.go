// Package cli provides the interactive menu-driven terminal interface.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	serrors "github.com/jdmaguire/shoestore/internal/errors"
	"github.com/jdmaguire/shoestore/internal/service"
	"github.com/jdmaguire/shoestore/internal/store"
)

const (
	optionViewAll = iota + 1
	optionCapture
	optionRestock
	optionValue
	optionSearch
	optionHighest
	optionExit
)

var menuOptions = []string{
	"1: View all shoes",
	"2: Add a new shoe",
	"3: Check shoe with lowest quantity and re-stock",
	"4: View total value for each item",
	"5: Search for a shoe using the shoe code",
	"6: Find shoe with highest quantity",
	"7: Exit",
}

// CLI drives the interactive menu loop on top of the inventory service.
type CLI struct {
	service service.InventoryService
	in      *bufio.Scanner
	out     io.Writer
	logger  *slog.Logger
}

// New creates a new CLI reading user input from in and rendering to out.
func New(svc service.InventoryService, in io.Reader, out io.Writer, logger *slog.Logger) *CLI {
	return &CLI{
		service: svc,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  logger.With("component", "cli"),
	}
}

// Run presents the menu until the user exits or input is exhausted.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(c.out, "\nHere are the options:")
		for _, opt := range menuOptions {
			fmt.Fprintln(c.out, opt)
		}

		choice, ok := c.promptChoice()
		if !ok {
			return nil
		}

		switch choice {
		case optionViewAll:
			c.viewAll()
		case optionCapture:
			c.capture()
		case optionRestock:
			c.restock()
		case optionValue:
			c.valuePerItem()
		case optionSearch:
			c.search()
		case optionHighest:
			c.highest()
		case optionExit:
			return nil
		}
	}
}

// prompt writes a label and reads one trimmed line. ok is false once input
// is exhausted, which callers treat as a clean exit.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptChoice reads a menu selection, re-prompting until it is an integer
// within the menu range.
func (c *CLI) promptChoice() (int, bool) {
	for {
		input, ok := c.prompt("\nEnter the option number you would like to perform: ")
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(input)
		if err != nil || choice < optionViewAll || choice > optionExit {
			fmt.Fprintln(c.out, "You have entered an incorrect value.")
			continue
		}
		return choice, true
	}
}

// promptNonNegativeInt re-prompts until the input parses as an integer >= 0.
func (c *CLI) promptNonNegativeInt(label, retryMsg string) (int, bool) {
	for {
		input, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 0 {
			fmt.Fprintln(c.out, retryMsg)
			continue
		}
		return n, true
	}
}

func (c *CLI) viewAll() {
	shoes := c.service.ViewAll()

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Country\tCode\tProduct\tCost\tQuantity")
	for _, shoe := range shoes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", shoe.Country, shoe.Code, shoe.Product, shoe.Cost, shoe.Quantity)
	}
	if err := w.Flush(); err != nil {
		c.logger.Error("failed to render inventory table", "error", err)
	}
}

func (c *CLI) capture() {
	country, ok := c.prompt("\nPlease input the country: ")
	if !ok {
		return
	}

	var code string
	for {
		code, ok = c.prompt("\nPlease input the unique shoe code: ")
		if !ok {
			return
		}
		if c.codeExists(code) {
			fmt.Fprintln(c.out, "This is not a unique code, please try again.")
			continue
		}
		break
	}

	product, ok := c.prompt("\nPlease input the product name: ")
	if !ok {
		return
	}
	cost, ok := c.promptNonNegativeInt("\nPlease input the cost: ", "The cost must be an integer value. Try again.")
	if !ok {
		return
	}
	quantity, ok := c.promptNonNegativeInt("\nPlease input the quantity: ", "The quantity must be an integer value. Try again.")
	if !ok {
		return
	}

	shoe, err := c.service.Capture(service.ShoeCreateDto{
		Country:  country,
		Code:     code,
		Product:  product,
		Cost:     cost,
		Quantity: quantity,
	})
	if err != nil {
		c.logger.Error("failed to capture shoe", "code", code, "error", err)
		fmt.Fprintln(c.out, "The shoe could not be saved:", err)
		return
	}
	fmt.Fprintf(c.out, "Shoe %s has been added to the inventory.\n", shoe.Code)
}

func (c *CLI) restock() {
	lowest, err := c.service.LowestQuantity()
	if err != nil {
		c.reportQuantityError(err)
		return
	}
	fmt.Fprintln(c.out, "Shoe with lowest quantity:")
	c.printShoe(lowest)

	delta, ok := c.promptNonNegativeInt(
		"How much would you like to restock these by? ",
		"The restock amount must be an integer value. Try again.",
	)
	if !ok {
		return
	}

	restocked, err := c.service.Restock(delta)
	if err != nil {
		c.logger.Error("failed to restock shoe", "code", lowest.Code, "error", err)
		fmt.Fprintln(c.out, "The restock could not be saved:", err)
		return
	}
	fmt.Fprintf(c.out, "The new quantity is now %d.\n", restocked.Quantity)
}

func (c *CLI) valuePerItem() {
	for _, v := range c.service.ValuePerItem() {
		fmt.Fprintf(c.out, "The total value for shoe code %s is %d\n", v.Code, v.Value)
	}
}

func (c *CLI) search() {
	code, ok := c.prompt("Enter the shoe code you want to search: ")
	if !ok {
		return
	}
	shoe, err := c.service.Search(code)
	if err != nil {
		if errors.Is(err, serrors.ErrShoeNotFound) {
			fmt.Fprintln(c.out, "No shoe with the code exists.")
			return
		}
		c.logger.Error("search failed", "code", code, "error", err)
		return
	}
	c.printShoe(shoe)
}

func (c *CLI) highest() {
	shoe, err := c.service.HighestQuantity()
	if err != nil {
		c.reportQuantityError(err)
		return
	}
	fmt.Fprintln(c.out, "Shoe with highest quantity for sale:")
	c.printShoe(shoe)
}

// codeExists checks for an exact, case-sensitive code match. This mirrors the
// creation-time uniqueness rule, which is stricter than search.
func (c *CLI) codeExists(code string) bool {
	for _, shoe := range c.service.ViewAll() {
		if shoe.Code == code {
			return true
		}
	}
	return false
}

func (c *CLI) reportQuantityError(err error) {
	if errors.Is(err, serrors.ErrEmptyInventory) {
		fmt.Fprintln(c.out, "The inventory is empty.")
		return
	}
	c.logger.Error("inventory query failed", "error", err)
}

func (c *CLI) printShoe(shoe *store.Shoe) {
	fmt.Fprintln(c.out, "-----------------------------------------------------")
	fmt.Fprintf(c.out, "Country:   %s\n", shoe.Country)
	fmt.Fprintf(c.out, "Code:      %s\n", shoe.Code)
	fmt.Fprintf(c.out, "Product:   %s\n", shoe.Product)
	fmt.Fprintf(c.out, "Cost:      %d\n", shoe.Cost)
	fmt.Fprintf(c.out, "Quantity:  %d\n", shoe.Quantity)
	fmt.Fprintln(c.out, "-----------------------------------------------------")
}
