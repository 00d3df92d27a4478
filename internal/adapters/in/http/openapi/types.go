package openapi

import "github.com/shopspring/decimal"

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	OrderId *int   `json:"orderId,omitempty"` //nolint:revive // matches the schema
}

type NewVehicle struct {
	Number int `json:"number"`
}

type Vehicle struct {
	Number    int  `json:"number"`
	Available bool `json:"available"`
	OrderId   *int `json:"orderId,omitempty"` //nolint:revive // matches the schema
}

type NewItem struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type NewOrder struct {
	UserName   string    `json:"userName"`
	City       string    `json:"city"`
	Postoffice int       `json:"postoffice"`
	Items      []NewItem `json:"items"`
}

type OrderCreated struct {
	OrderId int `json:"orderId"` //nolint:revive // matches the schema
}

type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Order struct {
	OrderId       int             `json:"orderId"` //nolint:revive // matches the schema
	UserName      string          `json:"userName"`
	City          string          `json:"city"`
	Postoffice    int             `json:"postoffice"`
	Items         []Item          `json:"items"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	VehicleNumber int             `json:"vehicleNumber"`
	Summary       string          `json:"summary,omitempty"`
}

type Tracking struct {
	OrderId int             `json:"orderId"` //nolint:revive // matches the schema
	City    string          `json:"city"`
	Amount  decimal.Decimal `json:"amount"`
}
