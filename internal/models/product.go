package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a menu item.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	VAT         decimal.Decimal `json:"vat" gorm:"column:vat;type:decimal(10,2);not null"`
	TagName     *string         `json:"tag_name" gorm:"type:varchar(100)"`
	TagColor    *string         `json:"tag_color" gorm:"type:varchar(9)"`
	SortOrder   *int            `json:"sort_order" gorm:"index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductInput is the request body accepted by create and update. The
// optional fields remember whether they were sent: an absent key keeps the
// stored value, an explicit null clears it.
type ProductInput struct {
	Name        string                    `json:"name" validate:"required,notblank,max=255"`
	Description Optional[string]          `json:"description"`
	Price       Optional[decimal.Decimal] `json:"price" validate:"required,gte=0"`
	VAT         Optional[decimal.Decimal] `json:"vat" validate:"required,gte=0"`
	TagName     Optional[string]          `json:"tag_name" validate:"omitempty,max=100"`
	TagColor    Optional[string]          `json:"tag_color" validate:"omitempty,hexrgb"`
	SortOrder   Optional[int]             `json:"sort_order" validate:"omitempty,gte=0"`
}

// NewProduct builds a product from a validated input.
func (in ProductInput) NewProduct() *Product {
	p := &Product{}
	in.ApplyTo(p)
	return p
}

// ApplyTo copies the input onto p. Name, price and vat are always
// replaced; optional fields only when they were sent.
func (in ProductInput) ApplyTo(p *Product) {
	p.Name = in.Name
	if in.Price.Value != nil {
		p.Price = *in.Price.Value
	}
	if in.VAT.Value != nil {
		p.VAT = *in.VAT.Value
	}
	in.Description.Apply(&p.Description)
	in.TagName.Apply(&p.TagName)
	in.TagColor.Apply(&p.TagColor)
	in.SortOrder.Apply(&p.SortOrder)
}

// ReorderInput is the body of the drag-and-drop sort endpoint.
type ReorderInput struct {
	Order []uint `json:"order" validate:"required,min=1,unique"`
}
