package persistence

import (
	"github.com/shopspring/decimal"
)

// ComponentModel represents the components table
type ComponentModel struct {
	ID       string          `gorm:"column:id;primaryKey"`
	Name     string          `gorm:"column:name;not null"`
	Kind     string          `gorm:"column:kind;not null"`
	Cost     decimal.Decimal `gorm:"column:unit_cost;type:text;not null"`   // decimal stored as text for exact round trips
	Weight   decimal.Decimal `gorm:"column:unit_weight;type:text;not null"` // decimal stored as text for exact round trips
	Stock    int             `gorm:"column:stock;not null;default:0"`
	Position int             `gorm:"column:position;not null"`
}

func (ComponentModel) TableName() string {
	return "components"
}

// ProductModel represents the products table
type ProductModel struct {
	ID              string             `gorm:"column:id;primaryKey"`
	Name            string             `gorm:"column:name;not null"`
	Stock           int                `gorm:"column:stock;not null;default:0"`
	PlannedQuantity *int               `gorm:"column:planned_quantity"` // NULL when no order is planned
	Position        int                `gorm:"column:position;not null"`
	Parts           []ProductPartModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductPartModel represents the product_parts table (bill of materials lines)
type ProductPartModel struct {
	ID          int             `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID   string          `gorm:"column:product_id;not null;index"`
	ComponentID string          `gorm:"column:component_id;not null"`
	Component   *ComponentModel `gorm:"foreignKey:ComponentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Quantity    int             `gorm:"column:quantity;not null"`
	Position    int             `gorm:"column:position;not null"`
}

func (ProductPartModel) TableName() string {
	return "product_parts"
}
