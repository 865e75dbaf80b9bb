package domain

import "strings"

// UnresolvedID is returned in place of a party id when resolution or creation fails.
const UnresolvedID int64 = -1

// Category identifies one of the four party tables.
type Category string

const (
	CategoryEngineer  Category = "Engineers"
	CategoryManager   Category = "Managers"
	CategoryArchitect Category = "Architects"
	CategoryCustomer  Category = "Customers"
)

var categoryIDColumns = map[Category]string{
	CategoryEngineer:  "engineer_id",
	CategoryManager:   "manager_id",
	CategoryArchitect: "architect_id",
	CategoryCustomer:  "customer_id",
}

// Categories lists every party category in menu order.
func Categories() []Category {
	return []Category{CategoryEngineer, CategoryManager, CategoryArchitect, CategoryCustomer}
}

func (c Category) Valid() bool {
	_, ok := categoryIDColumns[c]
	return ok
}

// Table is the store table holding rows of this category.
func (c Category) Table() string {
	return strings.ToLower(string(c))
}

// IDColumn is the primary key column of the category table. It doubles as
// the foreign key column name on projects.
func (c Category) IDColumn() string {
	return categoryIDColumns[c]
}

// Singular returns the lower-case singular noun, e.g. "engineer".
func (c Category) Singular() string {
	return strings.TrimSuffix(c.Table(), "s")
}

func (c Category) String() string {
	return string(c)
}

// Party is a contact record: engineer, manager, architect or customer.
type Party struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// PartySummary is the id/name pair shown when picking a party.
type PartySummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
