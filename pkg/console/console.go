// Package console runs the interactive, menu-driven inventory session on a
// line-buffered reader and writer.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"stockroom/pkg/inventory"
	"stockroom/pkg/logging"
)

// Exporter writes the inventory to its persisted form.
type Exporter interface {
	Export(items []inventory.Item) error
	Path() string
}

// Console dispatches menu selections to the store. It reads one line at a
// time and never holds more than the current line.
type Console struct {
	store    *inventory.Store
	exporter Exporter
	reader   *bufio.Reader
	writer   io.Writer
	logger   *zap.Logger
	styles   styles
}

// Option configures a Console.
type Option func(*Console)

// WithInput sets the operator input (default is os.Stdin).
func WithInput(r io.Reader) Option {
	return func(c *Console) {
		c.reader = bufio.NewReader(r)
	}
}

// WithOutput sets the operator output (default is os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.writer = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Console) {
		c.logger = logger
	}
}

// New creates a console over store; exporter receives option 6.
func New(store *inventory.Store, exporter Exporter, opts ...Option) *Console {
	c := &Console{
		store:    store,
		exporter: exporter,
		reader:   bufio.NewReader(os.Stdin),
		writer:   os.Stdout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.For(c.logger, "console")
	c.styles = newStyles(c.writer)
	return c
}

// Run shows the menu until the operator exits, input ends, or ctx is
// cancelled. Only cancellation and read failures are returned as errors.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu()
		input, err := c.prompt("Choose an option: ")
		if err != nil {
			return c.finish(err)
		}

		cmd := ParseCommand(input)
		c.logger.Debug("menu selection", zap.String("input", input), zap.Stringer("command", cmd))

		switch cmd {
		case CommandAdd:
			err = c.addItem()
		case CommandView:
			c.viewInventory()
		case CommandSearch:
			err = c.searchItem()
		case CommandUpdate:
			err = c.updateItem()
		case CommandDelete:
			err = c.deleteItem()
		case CommandExport:
			c.exportInventory()
		case CommandExit:
			fmt.Fprintln(c.writer, "Exiting... Goodbye!")
			return nil
		default:
			c.fail("Invalid choice. Please try again.")
		}
		if err != nil {
			return c.finish(err)
		}
	}
}

// finish treats end of input like choosing Exit.
func (c *Console) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(c.writer)
		fmt.Fprintln(c.writer, "Exiting... Goodbye!")
		return nil
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.writer)
	fmt.Fprintln(c.writer, c.styles.title.Render("--- Inventory Management System ---"))
	for cmd := CommandAdd; cmd <= CommandExit; cmd++ {
		fmt.Fprintf(c.writer, "%d. %s\n", cmd, cmd)
	}
}

func (c *Console) succeed(msg string) {
	fmt.Fprintln(c.writer, c.styles.success.Render(msg))
}

func (c *Console) fail(msg string) {
	fmt.Fprintln(c.writer, c.styles.failure.Render(msg))
}

func (c *Console) addItem() error {
	id, err := c.prompt("Enter Item ID: ")
	if err != nil {
		return err
	}
	name, err := c.prompt("Enter Item Name: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter Quantity: ")
	if err != nil {
		return err
	}
	price, err := c.promptFloat("Enter Price: ")
	if err != nil {
		return err
	}

	item := inventory.Item{ID: id, Name: name, Quantity: quantity, Price: price}
	switch err := c.store.Add(item); {
	case errors.Is(err, inventory.ErrDuplicateKey):
		c.fail("Item with this ID already exists.")
	case inventory.IsValidation(err):
		c.fail("Invalid item: " + err.Error())
	case err != nil:
		return err
	default:
		c.logger.Info("item added", zap.String("id", id))
		c.succeed("Item added successfully!")
	}
	return nil
}

func (c *Console) viewInventory() {
	items := c.store.List()
	if len(items) == 0 {
		fmt.Fprintln(c.writer, "Inventory is empty.")
		return
	}

	fmt.Fprintln(c.writer)
	fmt.Fprintln(c.writer, c.styles.title.Render("--- Inventory ---"))
	for _, item := range items {
		fmt.Fprintln(c.writer, item)
	}
}

func (c *Console) searchItem() error {
	query, err := c.prompt("Enter Item Name or ID to search: ")
	if err != nil {
		return err
	}

	found := c.store.Search(query)
	if len(found) == 0 {
		c.fail("Item not found.")
		return nil
	}
	for _, item := range found {
		fmt.Fprintf(c.writer, "Item Found: %s\n", item)
	}
	return nil
}

func (c *Console) updateItem() error {
	id, err := c.prompt("Enter Item ID to update: ")
	if err != nil {
		return err
	}
	if _, ok := c.store.Get(id); !ok {
		c.fail("Item not found.")
		return nil
	}

	for {
		fmt.Fprintln(c.writer)
		fmt.Fprintln(c.writer, "Select an option:")
		for choice := updateQuantity; choice <= updateDone; choice++ {
			fmt.Fprintf(c.writer, "%d. %s\n", choice, updateLabels[choice])
		}
		input, err := c.prompt("Enter your choice: ")
		if err != nil {
			return err
		}

		var (
			patch inventory.Patch
			done  string
		)
		switch parseUpdateChoice(input) {
		case updateQuantity:
			q, err := c.promptInt("Enter new Quantity: ")
			if err != nil {
				return err
			}
			patch.Quantity = &q
			done = "Quantity updated successfully!"
		case updatePrice:
			p, err := c.promptFloat("Enter new Price: ")
			if err != nil {
				return err
			}
			patch.Price = &p
			done = "Price updated successfully!"
		case updateBoth:
			q, err := c.promptInt("Enter new Quantity: ")
			if err != nil {
				return err
			}
			p, err := c.promptFloat("Enter new Price: ")
			if err != nil {
				return err
			}
			patch.Quantity, patch.Price = &q, &p
			done = "Quantity and Price updated successfully!"
		case updateDone:
			fmt.Fprintln(c.writer, "Exiting update...")
			return nil
		default:
			c.fail("Invalid choice. Please try again.")
			continue
		}

		updated, err := c.store.Update(id, patch)
		if err != nil {
			if errors.Is(err, inventory.ErrNotFound) {
				c.fail("Item not found.")
				return nil
			}
			c.fail("Update rejected: " + err.Error())
			continue
		}
		c.logger.Info("item updated",
			zap.String("id", id),
			zap.Int("quantity", updated.Quantity),
			zap.Float64("price", updated.Price))
		c.succeed(done)
	}
}

func (c *Console) deleteItem() error {
	id, err := c.prompt("Enter Item ID to delete: ")
	if err != nil {
		return err
	}
	if !c.store.Remove(id) {
		c.fail("Item not found.")
		return nil
	}
	c.logger.Info("item deleted", zap.String("id", id))
	c.succeed("Item deleted successfully!")
	return nil
}

func (c *Console) exportInventory() {
	if err := c.exporter.Export(c.store.List()); err != nil {
		c.logger.Error("export failed", zap.String("path", c.exporter.Path()), zap.Error(err))
		c.fail(fmt.Sprintf("Error exporting inventory: %v", err))
		return
	}
	c.succeed("Inventory exported successfully to " + c.exporter.Path())
}
