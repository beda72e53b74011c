package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"shopmate/internal/catalog"
	"shopmate/internal/config"
	"shopmate/internal/errors"
	"shopmate/internal/ops"
	"shopmate/internal/recommend"
	"shopmate/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, engine *recommend.Engine, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "shopmate",
		Usage:   "Checklist-to-cart shopping assistant",
		Version: Version,
		Commands: []*cli.Command{
			serveCmd(db, engine, cfg),
			processCmd(db, engine),
			productsCmd(db),
			productCmd(db),
			resetCmd(db),
			checklistCmd(db),
			cartCmd(db),
			cartAddCmd(db),
			cartUpdateCmd(db),
			cartRemoveCmd(db),
			cartClearCmd(db),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, engine *recommend.Engine, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP JSON API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Usage: "Interface to listen on (overrides config)"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			bind := cfg.Bind
			if c.IsSet("bind") {
				bind = c.String("bind")
			}
			port := cfg.Port
			if c.IsSet("port") {
				port = c.Int("port")
			}

			srv := web.NewServer(db, engine, bind, port)
			return web.Run(srv)
		},
	}
}

// processCmd creates the process command.
func processCmd(db *sql.DB, engine *recommend.Engine) *cli.Command {
	return &cli.Command{
		Name:  "process",
		Usage: "Process a shopping checklist (reads text from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "session", Aliases: []string{"s"}, Value: "cli", Usage: "Session id"},
		},
		Action: func(c *cli.Context) error {
			if !stdinHasData() {
				return outputError(errors.NewInvalidRequest("checklist text must be piped via stdin"))
			}

			text, err := readStdin(maxStdinBytes)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.ProcessChecklist(db, engine, ops.ProcessChecklistInput{
				Text:      text,
				SessionID: c.String("session"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// productsCmd creates the products command.
func productsCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "List catalog products with optional filters",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "store", Usage: "Only products from this store (repeatable)"},
			&cli.StringSliceFlag{Name: "category", Usage: "Only products in this category (repeatable)"},
			&cli.Float64Flag{Name: "min-price", Usage: "Minimum price"},
			&cli.Float64Flag{Name: "max-price", Usage: "Maximum price"},
			&cli.Float64Flag{Name: "min-rating", Usage: "Minimum rating (excludes unrated)"},
			&cli.StringFlag{Name: "sort", Usage: "Sort order: relevance|price_low|price_high|rating|newest"},
		},
		Action: func(c *cli.Context) error {
			filter := catalog.Filter{
				Stores:     c.StringSlice("store"),
				Categories: c.StringSlice("category"),
				SortBy:     catalog.SortKey(c.String("sort")),
			}
			if c.IsSet("min-price") {
				v := c.Float64("min-price")
				filter.MinPrice = &v
			}
			if c.IsSet("max-price") {
				v := c.Float64("max-price")
				filter.MaxPrice = &v
			}
			if c.IsSet("min-rating") {
				v := c.Float64("min-rating")
				filter.MinRating = &v
			}

			products, err := ops.ListProducts(db, ops.ListProductsInput{Filter: filter})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(products)
		},
	}
}

// productCmd creates the product command.
func productCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "product",
		Usage:     "Fetch a single product by id",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := parseID(c.Args().First())
			if err != nil {
				return outputError(err)
			}

			product, err := ops.GetProduct(db, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(product)
		},
	}
}

// resetCmd creates the reset command.
func resetCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "reset",
		Usage: "Clear the catalog and restore the default listings",
		Action: func(c *cli.Context) error {
			output, err := ops.ResetProducts(db)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// checklistCmd creates the checklist command.
func checklistCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "checklist",
		Usage:     "List the checklists recorded for a session",
		ArgsUsage: "<session-id>",
		Action: func(c *cli.Context) error {
			items, err := ops.ListChecklist(db, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(items)
		},
	}
}

// cartCmd creates the cart command.
func cartCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "cart",
		Usage:     "List a session's cart",
		ArgsUsage: "<session-id>",
		Action: func(c *cli.Context) error {
			lines, err := ops.GetCart(db, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(lines)
		},
	}
}

// cartAddCmd creates the cart-add command.
func cartAddCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "cart-add",
		Usage: "Add a product to a session's cart",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "session", Aliases: []string{"s"}, Value: "cli", Usage: "Session id"},
			&cli.Int64Flag{Name: "product", Required: true, Usage: "Product id"},
			&cli.IntFlag{Name: "quantity", Aliases: []string{"q"}, Value: 1, Usage: "Quantity to add"},
		},
		Action: func(c *cli.Context) error {
			item, err := ops.AddToCart(db, ops.AddToCartInput{
				SessionID: c.String("session"),
				ProductID: c.Int64("product"),
				Quantity:  c.Int("quantity"),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(item)
		},
	}
}

// cartUpdateCmd creates the cart-update command.
func cartUpdateCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "cart-update",
		Usage:     "Set a cart line's quantity (zero removes it)",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "quantity", Aliases: []string{"q"}, Required: true, Usage: "New quantity"},
		},
		Action: func(c *cli.Context) error {
			id, err := parseID(c.Args().First())
			if err != nil {
				return outputError(err)
			}

			output, err := ops.UpdateCartItem(db, id, c.Int("quantity"))
			if err != nil {
				return outputError(err)
			}
			if output.Removed {
				return outputJSON(map[string]string{"message": output.Message})
			}
			return outputJSON(output.Item)
		},
	}
}

// cartRemoveCmd creates the cart-remove command.
func cartRemoveCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "cart-remove",
		Usage:     "Remove a cart line",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id, err := parseID(c.Args().First())
			if err != nil {
				return outputError(err)
			}

			output, err := ops.RemoveFromCart(db, id)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// cartClearCmd creates the cart-clear command.
func cartClearCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "cart-clear",
		Usage:     "Remove every line in a session's cart",
		ArgsUsage: "<session-id>",
		Action: func(c *cli.Context) error {
			output, err := ops.ClearCart(db, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// outputJSON prints indented JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.ShopError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// maxStdinBytes caps piped checklist input, matching the upload limit.
const maxStdinBytes = 10 << 20

// readStdin reads piped content from stdin up to maxBytes.
func readStdin(maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxBytes+1))
	if err != nil {
		return "", errors.NewInternal(err)
	}
	if int64(len(data)) > maxBytes {
		return "", errors.NewPayloadTooLarge(maxBytes)
	}
	return strings.TrimSpace(string(data)), nil
}

// parseID parses a positional numeric id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewInvalidRequest("a numeric id argument is required")
	}
	return id, nil
}
