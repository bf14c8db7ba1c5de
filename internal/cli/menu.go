package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-component-shop/internal/cli/output"
)

var menuOptions = []string{
	"1. Create Category",
	"2. Create Product",
	"3. Show Categories",
	"4. Show Products",
	"5. Show Products in Category",
	"6. Find Category by Name",
	"7. Find Product by Name",
	"8. Delete Category",
	"9. Delete Product",
	"0. Exit",
}

// Menu is the interactive loop. It reads one answer per line and keeps
// going until 0 is chosen or input ends.
type Menu struct {
	app *App
	in  *bufio.Reader
	out *output.Printer
}

func NewMenu(app *App, in io.Reader, out *output.Printer) *Menu {
	return &Menu{
		app: app,
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.out.Section("Electronics Components Shop CLI")
		for _, opt := range menuOptions {
			m.out.Line("%s", opt)
		}

		choice, err := m.promptInt("Please select an option")
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.out.Line("")
				return nil
			}
			return err
		}

		if choice == 0 {
			m.out.Line("Exiting...")
			return nil
		}
		if err := m.dispatch(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				m.out.Line("")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int64) error {
	switch choice {
	case 1:
		name, err := m.promptString("Enter category name")
		if err != nil {
			return err
		}
		return m.app.Categories.CreateCategory(ctx, m.out, name)
	case 2:
		name, err := m.promptString("Enter product name")
		if err != nil {
			return err
		}
		price, err := m.promptFloat("Enter product price")
		if err != nil {
			return err
		}
		quantity, err := m.promptInt("Enter product quantity")
		if err != nil {
			return err
		}
		categoryID, err := m.promptInt("Enter category ID")
		if err != nil {
			return err
		}
		return m.app.Products.CreateProduct(ctx, m.out, name, price, quantity, categoryID)
	case 3:
		return m.app.Categories.ShowCategories(ctx, m.out)
	case 4:
		return m.app.Products.ShowProducts(ctx, m.out)
	case 5:
		id, err := m.promptInt("Enter category ID")
		if err != nil {
			return err
		}
		return m.app.Products.ShowProductsInCategory(ctx, m.out, id)
	case 6:
		name, err := m.promptString("Enter category name")
		if err != nil {
			return err
		}
		return m.app.Categories.FindCategoryByName(ctx, m.out, name)
	case 7:
		name, err := m.promptString("Enter product name")
		if err != nil {
			return err
		}
		return m.app.Products.FindProductByName(ctx, m.out, name)
	case 8:
		id, err := m.promptInt("Enter category ID")
		if err != nil {
			return err
		}
		return m.app.Categories.DeleteCategory(ctx, m.out, id)
	case 9:
		id, err := m.promptInt("Enter product ID")
		if err != nil {
			return err
		}
		return m.app.Products.DeleteProduct(ctx, m.out, id)
	default:
		m.out.Error("Invalid choice, please try again.")
		return nil
	}
}

// readLine returns the next line without its line ending. A final line
// without a newline is still returned; io.EOF only comes back once input is
// exhausted.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptString asks again on empty input.
func (m *Menu) promptString(label string) (string, error) {
	for {
		m.out.Prompt(label)
		line, err := m.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

func (m *Menu) promptInt(label string) (int64, error) {
	for {
		m.out.Prompt(label)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		value := strings.TrimSpace(line)
		if value == "" {
			continue
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return n, nil
		}
		m.out.Error("Error: '%s' is not a valid integer.", value)
	}
}

func (m *Menu) promptFloat(label string) (float64, error) {
	for {
		m.out.Prompt(label)
		line, err := m.readLine()
		if err != nil {
			return 0, err
		}
		value := strings.TrimSpace(line)
		if value == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f, nil
		}
		m.out.Error("Error: '%s' is not a valid float.", value)
	}
}
