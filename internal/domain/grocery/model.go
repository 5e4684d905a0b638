package grocery

import (
	"fmt"
	"time"
)

// Grocery is owned by exactly one household. List membership is tracked
// separately, see List.
type Grocery struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null"`
	Quantity    int       `gorm:"not null"`
	HouseholdID uint      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (g Grocery) String() string {
	return fmt.Sprintf("%s: %d", g.Name, g.Quantity)
}

// List selects one of the two independent membership collections a
// household keeps over its groceries. An item can sit in both lists, or in
// neither, regardless of which household owns it. That split between
// ownership and membership is replicated from the legacy model on purpose;
// see DESIGN.md before changing it.
type List string

const (
	GroceryList  List = "grocery"
	ShoppingList List = "shopping"
)

func (l List) Valid() bool {
	return l == GroceryList || l == ShoppingList
}
