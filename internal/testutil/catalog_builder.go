package testutil

import (
	"github.com/hupe1980/shopmesh/catalog"
	"github.com/hupe1980/shopmesh/core"
)

// ProductBuilder helps construct products with fluent chaining for tests.
// Example:
//
//	p := NewProductBuilder("p1", "Laptops").Price(999).Rating(4.5).Build()
type ProductBuilder struct {
	product core.Product
}

// NewProductBuilder creates a builder for a valid in-stock product with the
// given id and category. Use chainable methods then call Build.
func NewProductBuilder(id, category string) *ProductBuilder {
	return &ProductBuilder{product: core.Product{
		ID:       id,
		Name:     "Product " + id,
		Category: category,
		Price:    100,
		Rating:   4.0,
		Reviews:  100,
		InStock:  true,
	}}
}

// Name sets the product name (chainable).
func (b *ProductBuilder) Name(name string) *ProductBuilder {
	b.product.Name = name
	return b
}

// Price sets the product price (chainable).
func (b *ProductBuilder) Price(price float64) *ProductBuilder {
	b.product.Price = price
	return b
}

// Rating sets the product rating (chainable).
func (b *ProductBuilder) Rating(rating float64) *ProductBuilder {
	b.product.Rating = rating
	return b
}

// Reviews sets the review count (chainable).
func (b *ProductBuilder) Reviews(reviews int) *ProductBuilder {
	b.product.Reviews = reviews
	return b
}

// OutOfStock marks the product out of stock (chainable).
func (b *ProductBuilder) OutOfStock() *ProductBuilder {
	b.product.InStock = false
	return b
}

// Featured marks the product featured (chainable).
func (b *ProductBuilder) Featured() *ProductBuilder {
	b.product.Featured = true
	return b
}

// Build returns the constructed product.
func (b *ProductBuilder) Build() core.Product {
	return b.product
}

// MustSnapshot builds a validated catalog snapshot from products, panicking
// on schema violations. Test-only convenience.
func MustSnapshot(products ...core.Product) *catalog.Snapshot {
	snapshot, err := catalog.New(products)
	if err != nil {
		panic(err)
	}
	return snapshot
}
