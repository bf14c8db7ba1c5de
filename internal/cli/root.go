// Package cli wires the category and product handlers into cobra commands
// and the interactive numbered menu.
package cli

import (
	"fmt"
	"strconv"

	cathandler "github.com/fekuna/omnipos-component-shop/internal/category/handler"
	"github.com/fekuna/omnipos-component-shop/internal/cli/output"
	prodhandler "github.com/fekuna/omnipos-component-shop/internal/product/handler"
	"github.com/spf13/cobra"
)

type App struct {
	Categories *cathandler.CategoryHandler
	Products   *prodhandler.ProductHandler
}

// NewRootCommand builds the shop command tree. Running it without a
// subcommand starts the interactive menu.
func NewRootCommand(app *App) *cobra.Command {
	var jsonOutput bool
	printer := func(cmd *cobra.Command) *output.Printer {
		return output.New(cmd.OutOrStdout(), jsonOutput)
	}

	root := &cobra.Command{
		Use:   "shop",
		Short: "Electronics Components Shop CLI",
		Long: `Manage the categories and products of an electronics components shop.

Run without a command to use the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewMenu(app, cmd.InOrStdin(), output.New(cmd.OutOrStdout(), false)).Run(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	root.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Main Menu",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return NewMenu(app, cmd.InOrStdin(), output.New(cmd.OutOrStdout(), false)).Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:     "create-category NAME",
			Short:   "Create a new category (e.g., Resistors, Capacitors)",
			Args:    cobra.ExactArgs(1),
			Example: "  shop create-category Resistors",
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Categories.CreateCategory(cmd.Context(), printer(cmd), args[0])
			},
		},
		&cobra.Command{
			Use:     "create-product NAME PRICE QUANTITY CATEGORY_ID",
			Short:   "Create a new product (electronic component)",
			Args:    cobra.ExactArgs(4),
			Example: `  shop create-product "10k Resistor" 0.1 500 1`,
			RunE: func(cmd *cobra.Command, args []string) error {
				price, err := parseFloat("PRICE", args[1])
				if err != nil {
					return err
				}
				quantity, err := parseInt("QUANTITY", args[2])
				if err != nil {
					return err
				}
				categoryID, err := parseInt("CATEGORY_ID", args[3])
				if err != nil {
					return err
				}
				return app.Products.CreateProduct(cmd.Context(), printer(cmd), args[0], price, quantity, categoryID)
			},
		},
		&cobra.Command{
			Use:   "show-categories",
			Short: "Show all categories",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Categories.ShowCategories(cmd.Context(), printer(cmd))
			},
		},
		&cobra.Command{
			Use:   "show-products",
			Short: "Show all products",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Products.ShowProducts(cmd.Context(), printer(cmd))
			},
		},
		&cobra.Command{
			Use:   "show-products-in-category CATEGORY_ID",
			Short: "Show all products in a specific category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseInt("CATEGORY_ID", args[0])
				if err != nil {
					return err
				}
				return app.Products.ShowProductsInCategory(cmd.Context(), printer(cmd), id)
			},
		},
		&cobra.Command{
			Use:   "show-product PRODUCT_ID",
			Short: "Show a product and its category",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseInt("PRODUCT_ID", args[0])
				if err != nil {
					return err
				}
				return app.Products.ShowProduct(cmd.Context(), printer(cmd), id)
			},
		},
		&cobra.Command{
			Use:   "find-category-by-name NAME",
			Short: "Find a category by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Categories.FindCategoryByName(cmd.Context(), printer(cmd), args[0])
			},
		},
		&cobra.Command{
			Use:   "find-product-by-name NAME",
			Short: "Find a product by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Products.FindProductByName(cmd.Context(), printer(cmd), args[0])
			},
		},
		&cobra.Command{
			Use:   "delete-category CATEGORY_ID",
			Short: "Delete a category by ID",
			Long: `Delete a category by ID.

Products in the category are kept and still carry the deleted category's ID.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseInt("CATEGORY_ID", args[0])
				if err != nil {
					return err
				}
				return app.Categories.DeleteCategory(cmd.Context(), printer(cmd), id)
			},
		},
		&cobra.Command{
			Use:   "delete-product PRODUCT_ID",
			Short: "Delete a product by ID",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseInt("PRODUCT_ID", args[0])
				if err != nil {
					return err
				}
				return app.Products.DeleteProduct(cmd.Context(), printer(cmd), id)
			},
		},
	)

	return root
}

func parseInt(arg, value string) (int64, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q is not a valid integer", arg, value)
	}
	return n, nil
}

func parseFloat(arg, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q is not a valid float", arg, value)
	}
	return f, nil
}
