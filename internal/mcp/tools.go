package mcp

import "github.com/mark3labs/mcp-go/mcp"

var checklistProcessToolDef = mcp.NewTool("checklist_process",
	mcp.WithDescription("Process a free-text shopping checklist: extracts items, classifies them, and generates product recommendations. Clears previously generated products first."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Checklist text; items separated by commas, newlines, or list markers"),
	),
	mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session the checklist belongs to"),
	),
)

var checklistListToolDef = mcp.NewTool("checklist_list",
	mcp.WithDescription("List the raw checklists recorded for a session, oldest first."),
	mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session to list checklists for"),
	),
)

var productListToolDef = mcp.NewTool("product_list",
	mcp.WithDescription("List catalog products with optional filtering and sorting."),
	mcp.WithArray("stores",
		mcp.Description("Only include products from these stores"),
		mcp.WithStringItems(),
	),
	mcp.WithArray("categories",
		mcp.Description("Only include products in these categories"),
		mcp.WithStringItems(),
	),
	mcp.WithNumber("min_price",
		mcp.Description("Minimum price, inclusive"),
	),
	mcp.WithNumber("max_price",
		mcp.Description("Maximum price, inclusive"),
	),
	mcp.WithNumber("min_rating",
		mcp.Description("Minimum rating, inclusive; unrated products are excluded"),
	),
	mcp.WithString("sort_by",
		mcp.Description("Sort order: relevance, price_low, price_high, rating, or newest"),
		mcp.Enum("relevance", "price_low", "price_high", "rating", "newest"),
	),
)

var productGetToolDef = mcp.NewTool("product_get",
	mcp.WithDescription("Fetch a single product by id."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Product id"),
	),
)

var productResetToolDef = mcp.NewTool("product_reset",
	mcp.WithDescription("Clear the catalog and restore the default listings. Product ids are never reused."),
)

var cartListToolDef = mcp.NewTool("cart_list",
	mcp.WithDescription("List a session's cart with product details. Lines whose product no longer exists are omitted."),
	mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session whose cart to list"),
	),
)

var cartAddToolDef = mcp.NewTool("cart_add",
	mcp.WithDescription("Add a product to a session's cart. Adding the same product again increments the quantity."),
	mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session to add to"),
	),
	mcp.WithNumber("product_id",
		mcp.Required(),
		mcp.Description("Product id to add"),
	),
	mcp.WithNumber("quantity",
		mcp.Description("Quantity to add (default 1)"),
	),
)

var cartUpdateToolDef = mcp.NewTool("cart_update",
	mcp.WithDescription("Set a cart line's quantity. A quantity of zero or less removes the line."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Cart line id"),
	),
	mcp.WithNumber("quantity",
		mcp.Required(),
		mcp.Description("New quantity; zero or less removes the line"),
	),
)

var cartRemoveToolDef = mcp.NewTool("cart_remove",
	mcp.WithDescription("Remove a cart line by id. Removing a missing line is not an error."),
	mcp.WithNumber("id",
		mcp.Required(),
		mcp.Description("Cart line id"),
	),
)

var cartClearToolDef = mcp.NewTool("cart_clear",
	mcp.WithDescription("Remove every line in a session's cart."),
	mcp.WithString("session_id",
		mcp.Required(),
		mcp.Description("Session whose cart to clear"),
	),
)
