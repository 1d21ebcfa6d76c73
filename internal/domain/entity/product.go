// Package entity contains the core business objects of the project.
package entity

// Product is an immutable catalog record. Prices are whole currency units.
type Product struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Price         int64    `json:"price" yaml:"price"`
	OriginalPrice *int64   `json:"originalPrice,omitempty" yaml:"originalPrice,omitempty"`
	Image         string   `json:"image,omitempty" yaml:"image,omitempty"`
	Category      string   `json:"category" yaml:"category"`
	Unit          string   `json:"unit" yaml:"unit"`
	InStock       bool     `json:"inStock" yaml:"inStock"`
	Badge         string   `json:"badge,omitempty" yaml:"badge,omitempty"`
	Rating        *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Category groups products and belongs to one storefront tab.
type Category struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Tab   string `json:"tab,omitempty" yaml:"tab,omitempty"`
}

// AllTab is the tab that lists every category and product.
const AllTab = "All"
