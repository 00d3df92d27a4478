package order

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when a zero-value Item is used.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a named, priced line item of an order. Items are immutable values owned by
// the order that contains them.
type Item struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Price
	guard guard.ConstructorGuard
}

// NewItem creates an item; the price must not be negative.
//
// Example:
//
//	item, err := order.NewItem("Arduino", decimal.NewFromInt(200))
func NewItem(name string, price decimal.Decimal) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := item.setPrice(price); err != nil {
		return Item{}, err
	}
	item.name = name

	return item, nil
}

// Validate returns ErrItemIsNotConstructed for a zero-value Item.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// Price returns the item price in UAH.
func (i Item) Price() kernel.Price {
	return i.price
}

// String renders the item as "name (price UAH)".
func (i Item) String() string {
	return fmt.Sprintf("%s (%s UAH)", i.name, i.price)
}

func (i *Item) setPrice(amount decimal.Decimal) error {
	price, err := kernel.NewPrice(amount)
	if err != nil {
		return err
	}

	i.price = price
	return nil
}
