package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"blinkbuy/internal/domain/constants"
	"blinkbuy/internal/domain/entity"
	"blinkbuy/internal/errors"
)

// ToolCall is a decoded model tool request. Each tool has its own variant.
type ToolCall interface {
	ToolName() string
}

type SearchProductsCall struct {
	Query string  `json:"query"`
	Limit float64 `json:"limit"`
}

type AddToCartCall struct {
	ProductNames []string  `json:"product_names"`
	Quantities   []float64 `json:"quantities"`
}

type RemoveFromCartCall struct {
	ProductNames []string `json:"product_names"`
}

type GetCartContentsCall struct{}

type ClearCartCall struct{}

type SuggestProductsCall struct {
	ProductNames []string `json:"product_names"`
	Reason       string   `json:"reason"`
}

// UnknownToolCall carries a tool name outside the catalog.
type UnknownToolCall struct {
	Name string
}

func (SearchProductsCall) ToolName() string  { return constants.ToolSearchProducts }
func (AddToCartCall) ToolName() string       { return constants.ToolAddToCart }
func (RemoveFromCartCall) ToolName() string  { return constants.ToolRemoveFromCart }
func (GetCartContentsCall) ToolName() string { return constants.ToolGetCartContents }
func (ClearCartCall) ToolName() string       { return constants.ToolClearCart }
func (SuggestProductsCall) ToolName() string { return constants.ToolSuggestProductsForCart }
func (c UnknownToolCall) ToolName() string   { return c.Name }

// DecodeToolCall turns the wire form into a typed variant. Empty arguments are
// treated as an empty object.
func DecodeToolCall(spec entity.ToolCallSpec) (ToolCall, error) {
	var call ToolCall
	switch spec.Function.Name {
	case constants.ToolSearchProducts:
		call = &SearchProductsCall{}
	case constants.ToolAddToCart:
		call = &AddToCartCall{}
	case constants.ToolRemoveFromCart:
		call = &RemoveFromCartCall{}
	case constants.ToolGetCartContents:
		return GetCartContentsCall{}, nil
	case constants.ToolClearCart:
		return ClearCartCall{}, nil
	case constants.ToolSuggestProductsForCart:
		call = &SuggestProductsCall{}
	default:
		return UnknownToolCall{Name: spec.Function.Name}, nil
	}

	args := strings.TrimSpace(spec.Function.Arguments)
	if args == "" {
		args = "{}"
	}
	if err := json.Unmarshal([]byte(args), call); err != nil {
		return nil, errors.Wrapf(err, "decode arguments of %s", spec.Function.Name)
	}

	switch c := call.(type) {
	case *SearchProductsCall:
		return *c, nil
	case *AddToCartCall:
		return *c, nil
	case *RemoveFromCartCall:
		return *c, nil
	case *SuggestProductsCall:
		return *c, nil
	}

	return call, nil
}

// toolOutcome is the result text sent back to the model plus the products the
// reply should surface.
type toolOutcome struct {
	result             string
	suggested          []entity.Product
	added              []entity.Product
	removed            []entity.Product
	isRecipeSuggestion bool
}

// executeTool runs one call against the cart and search services
func (srv *assistantService) executeTool(ctx context.Context, call ToolCall) toolOutcome {
	switch c := call.(type) {
	case SearchProductsCall:
		return srv.searchProductsTool(c)
	case AddToCartCall:
		return srv.addToCartTool(ctx, c)
	case RemoveFromCartCall:
		return srv.removeFromCartTool(ctx, c)
	case GetCartContentsCall:
		return toolOutcome{result: FormatCartContents(srv.cart.Items())}
	case ClearCartCall:
		return srv.clearCartTool(ctx)
	case SuggestProductsCall:
		return srv.suggestProductsTool(c)
	case UnknownToolCall:
		return toolOutcome{result: "Unknown tool: " + c.Name}
	default:
		return toolOutcome{result: "Unknown tool: " + call.ToolName()}
	}
}

func (srv *assistantService) searchProductsTool(call SearchProductsCall) toolOutcome {
	limit := int(call.Limit)
	if limit <= 0 {
		limit = constants.DefaultSearchLimit
	}

	found := srv.search.SearchProducts(call.Query, limit)
	if len(found) == 0 {
		return toolOutcome{result: fmt.Sprintf("No products found for %q", call.Query)}
	}

	return toolOutcome{
		result:    fmt.Sprintf("Found %d products: %s", len(found), joinNames(found)),
		suggested: found,
	}
}

// addToCartTool resolves each name on its own, so two names may land on the same product
func (srv *assistantService) addToCartTool(ctx context.Context, call AddToCartCall) toolOutcome {
	var added []entity.Product
	for i, name := range call.ProductNames {
		found := srv.search.FindProductsByNames([]string{name})
		if len(found) == 0 {
			continue
		}

		quantity := 1
		if i < len(call.Quantities) && call.Quantities[i] >= 1 {
			quantity = int(call.Quantities[i])
		}

		product := found[0]
		if err := srv.cart.AddToCart(ctx, product, quantity); err != nil {
			srv.log(ctx).Warn("Assistant add to cart failed",
				slog.String("product_id", product.ID),
				slog.Any("error", err),
			)

			continue
		}
		added = append(added, product)
	}

	if len(added) == 0 {
		return toolOutcome{result: "Could not find those products to add."}
	}

	return toolOutcome{
		result: fmt.Sprintf("Added %d item(s) to cart: %s", len(added), joinNames(added)),
		added:  added,
	}
}

// removeFromCartTool resolves each name against the cart's own items
func (srv *assistantService) removeFromCartTool(ctx context.Context, call RemoveFromCartCall) toolOutcome {
	items := srv.cart.Items()
	claimed := make(map[string]struct{})

	var removed []entity.Product
	for _, name := range call.ProductNames {
		fragment := strings.ToLower(strings.TrimSpace(name))
		if fragment == "" {
			continue
		}

		for _, item := range items {
			if _, ok := claimed[item.Product.ID]; ok {
				continue
			}
			if !nameOrTagContains(item.Product, fragment) {
				continue
			}
			claimed[item.Product.ID] = struct{}{}
			srv.cart.RemoveFromCart(ctx, item.Product.ID)
			removed = append(removed, item.Product)

			break
		}
	}

	if len(removed) == 0 {
		return toolOutcome{result: "Those items are not in the cart."}
	}

	return toolOutcome{
		result:  fmt.Sprintf("Removed %d item(s) from cart: %s", len(removed), joinNames(removed)),
		removed: removed,
	}
}

func (srv *assistantService) clearCartTool(ctx context.Context) toolOutcome {
	count := srv.cart.ClearCart(ctx)
	if count == 0 {
		return toolOutcome{result: "The cart is already empty."}
	}

	return toolOutcome{result: fmt.Sprintf("Cleared %d item(s) from the cart.", count)}
}

func (srv *assistantService) suggestProductsTool(call SuggestProductsCall) toolOutcome {
	found := srv.search.FindProductsByNames(call.ProductNames)
	if len(found) == 0 {
		return toolOutcome{
			result:             "Could not find matching products to suggest.",
			isRecipeSuggestion: true,
		}
	}

	labels := make([]string, 0, len(found))
	for _, product := range found {
		labels = append(labels, fmt.Sprintf("%s (₹%d)", product.Name, product.Price))
	}

	return toolOutcome{
		result:             fmt.Sprintf("Suggesting %d products: %s", len(found), strings.Join(labels, ", ")),
		suggested:          found,
		isRecipeSuggestion: true,
	}
}

func joinNames(products []entity.Product) string {
	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}

	return strings.Join(names, ", ")
}

// FormatCartContents renders the cart for the model and for the get_cart_contents tool
func FormatCartContents(items entity.CartItems) string {
	if len(items) == 0 {
		return "Your cart is empty."
	}

	var b strings.Builder
	b.WriteString("Your cart:\n")
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s × %d — ₹%d", item.Product.Name, item.Quantity, item.LineTotal())
	}
	fmt.Fprintf(&b, "\n\nTotal: ₹%d", items.TotalPrice())

	return b.String()
}
