package models

import (
	"time"
)

type OrderType string

const (
	OrderTypeDineIn  OrderType = "DineIn"
	OrderTypeDineOut OrderType = "DineOut"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusPlaced     OrderStatus = "Placed"
)

type Address struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AddressName string    `gorm:"uniqueIndex;not null"     json:"address_name"`
	ShortName   string    `gorm:"not null"                 json:"short_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Customer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Phone     string    `gorm:"uniqueIndex;not null"     json:"phone"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartOrder references Customer/Address only for dine-out orders; both
// foreign keys stay NULL for dine-in.
type CartOrder struct {
	ID               uint        `gorm:"primaryKey;autoIncrement"            json:"id"`
	OrderType        OrderType   `gorm:"not null"                            json:"order_type"`
	Status           OrderStatus `gorm:"index;not null;default:'Processing'" json:"status"`
	DoesChargesApply bool        `gorm:"default:false"                       json:"does_charges_apply"`
	CustomerID       *uint       `gorm:"index"                               json:"customer_id"`
	AddressID        *uint       `gorm:"index"                               json:"address_id"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Selected is a single-row table pointing at the currently active order.
// All writes go through service.SelectedService.
type Selected struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	CartOrderID uint `gorm:"not null"   json:"cart_order_id"`
}

// SelectedRowID is the fixed primary key of the singleton Selected row.
const SelectedRowID uint = 1

type MenuItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null"     json:"name"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Category    string    `gorm:"index"                    json:"category"`
	Description string    `json:"description"`
	Available   bool      `gorm:"default:true"             json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CartItem struct {
	ID          uint     `gorm:"primaryKey;autoIncrement"                      json:"id"`
	CartOrderID uint     `gorm:"not null;uniqueIndex:idx_cart_order_menu_item" json:"cart_order_id"`
	MenuItemID  uint     `gorm:"not null;uniqueIndex:idx_cart_order_menu_item" json:"menu_item_id"`
	MenuItem    MenuItem `gorm:"foreignKey:MenuItemID"                         json:"menu_item,omitempty"`
	Quantity    uint     `gorm:"default:1;check:quantity>0"                    json:"quantity"`
}

type Employee struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Phone        string    `gorm:"uniqueIndex;not null"     json:"phone"`
	Position     string    `json:"position"`
	Salary       float64   `json:"salary"`
	Username     string    `gorm:"uniqueIndex;not null"     json:"username"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	Role         string    `gorm:"not null;default:'staff'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Attendance is upserted by (employee, date); Date uses YYYY-MM-DD.
type Attendance struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"               json:"id"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:idx_employee_date" json:"employee_id"`
	Date       string `gorm:"not null;uniqueIndex:idx_employee_date" json:"date"`
	Present    bool   `gorm:"default:true"                           json:"present"`
	Note       string `json:"note"`
}

type Expense struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	Amount    float64   `gorm:"not null"                 json:"amount"`
	Date      string    `gorm:"index;not null"           json:"date"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
