package llm

import "blinkbuy/internal/domain/constants"

type toolDefinition struct {
	Type     string             `json:"type"`
	Function functionDefinition `json:"function"`
}

type functionDefinition struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  jsonSchema `json:"parameters"`
}

type jsonSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type schemaProperty struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Items       *schemaProperty `json:"items,omitempty"`
}

func stringArray(description string) schemaProperty {
	return schemaProperty{Type: "array", Items: &schemaProperty{Type: "string"}, Description: description}
}

func function(name, description string, properties map[string]schemaProperty, required ...string) toolDefinition {
	if properties == nil {
		properties = map[string]schemaProperty{}
	}
	if required == nil {
		required = []string{}
	}

	return toolDefinition{
		Type: "function",
		Function: functionDefinition{
			Name:        name,
			Description: description,
			Parameters: jsonSchema{
				Type:       "object",
				Properties: properties,
				Required:   required,
			},
		},
	}
}

// toolCatalog is the fixed set of functions offered to the model
func toolCatalog() []toolDefinition {
	return []toolDefinition{
		function(constants.ToolSearchProducts,
			"Search for products in the store by name, category, or keywords. "+
				"Use this when the user wants to find products or mentions any grocery items.",
			map[string]schemaProperty{
				"query": {Type: "string", Description: "The search query - product name, category, or keywords"},
				"limit": {Type: "number", Description: "Maximum number of products to return (default: 6)"},
			},
			"query",
		),
		function(constants.ToolAddToCart,
			"Add one or more products to the shopping cart. "+
				"Use this when the user wants to add, buy, get, or put items in their cart.",
			map[string]schemaProperty{
				"product_names": stringArray("List of product names or keywords to add to cart"),
				"quantities": {
					Type:        "array",
					Items:       &schemaProperty{Type: "number"},
					Description: "Quantities for each product (optional, defaults to 1 for each)",
				},
			},
			"product_names",
		),
		function(constants.ToolRemoveFromCart,
			"Remove products from the shopping cart. "+
				"Use this when the user wants to remove, delete, or take out items from their cart.",
			map[string]schemaProperty{
				"product_names": stringArray("List of product names or keywords to remove from cart"),
			},
			"product_names",
		),
		function(constants.ToolGetCartContents,
			"Get the current contents of the shopping cart. "+
				"Use this when the user asks to see, show, or list their cart.",
			nil,
		),
		function(constants.ToolClearCart,
			"Remove all items from the shopping cart. "+
				"Use this when the user wants to clear, empty, or reset their cart.",
			nil,
		),
		function(constants.ToolSuggestProductsForCart,
			"Suggest products to add to cart without actually adding them. "+
				"Returns products with an option for the user to add them. "+
				"Use this for recipe ingredients or product recommendations.",
			map[string]schemaProperty{
				"product_names": stringArray("List of product names or keywords to suggest"),
				"reason":        {Type: "string", Description: "Why these products are being suggested (e.g., 'for making pasta')"},
			},
			"product_names",
		),
	}
}
