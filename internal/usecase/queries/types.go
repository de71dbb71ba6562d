package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models returned by query services. Handlers map these onto response
// DTOs; repositories build them straight from rows.

type BookingView struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	RoomName        string
	ClientName      string
	ClientEmail     string
	ClientPhone     *string
	CheckIn         time.Time
	CheckOut        time.Time
	Adults          int
	Children        int
	MealPlan        string
	TotalAmount     string
	AmountPaid      string
	PaymentStatus   string
	PaymentResponse json.RawMessage
	CreatedAt       time.Time
}

type RoomView struct {
	ID          uuid.UUID
	Name        string
	Description string
	Rate        string
	Available   bool
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RoomCalendarView struct {
	RoomID     uuid.UUID
	RoomName   string
	BookedDays []string
}

type UserView struct {
	ID          uuid.UUID
	Email       string
	Role        string
	SecondName  string
	PhoneNumber string
	LastLogin   *time.Time
	CreatedAt   time.Time
}

type CategoryView struct {
	ID          uuid.UUID
	Name        string
	Description string
	Products    int
}

type ProductView struct {
	ID            uuid.UUID
	CategoryID    *uuid.UUID
	CategoryName  *string
	Name          string
	SKU           string
	Description   string
	CostPrice     string
	SellingPrice  string
	StockQuantity int
	ReorderLevel  int
	NeedsReorder  bool
	IsActive      bool
}

type RestockView struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Note        string
	Date        time.Time
}

type SaleItemView struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int
	Price       string
	Subtotal    string
}

type SaleView struct {
	ID            uuid.UUID
	CustomerName  string
	CashierID     *uuid.UUID
	PaymentMethod string
	Total         string
	Date          time.Time
	Items         []SaleItemView
}
