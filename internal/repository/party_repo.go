package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"poisepms/internal/domain"
)

// Contact holds the columns shared by every party table.
type Contact struct {
	Name    string `gorm:"column:name"`
	Phone   string `gorm:"column:phone"`
	Email   string `gorm:"column:email"`
	Address string `gorm:"column:address"`
}

// The four party tables differ only in name and id column. These types exist
// for schema migration; reads and writes go through the category helpers.

type engineerModel struct {
	ID      int64 `gorm:"column:engineer_id;primaryKey;autoIncrement"`
	Contact `gorm:"embedded"`
}

func (engineerModel) TableName() string { return domain.CategoryEngineer.Table() }

type managerModel struct {
	ID      int64 `gorm:"column:manager_id;primaryKey;autoIncrement"`
	Contact `gorm:"embedded"`
}

func (managerModel) TableName() string { return domain.CategoryManager.Table() }

type architectModel struct {
	ID      int64 `gorm:"column:architect_id;primaryKey;autoIncrement"`
	Contact `gorm:"embedded"`
}

func (architectModel) TableName() string { return domain.CategoryArchitect.Table() }

type customerModel struct {
	ID      int64 `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Contact `gorm:"embedded"`
}

func (customerModel) TableName() string { return domain.CategoryCustomer.Table() }

type PartyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

// ListSummaries returns id and name of every row in the category table.
func (r *PartyRepository) ListSummaries(ctx context.Context, c domain.Category) ([]domain.PartySummary, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	var out []domain.PartySummary
	tx := r.db.WithContext(ctx).
		Table(c.Table()).
		Select(c.IDColumn() + " AS id, name").
		Order(c.IDColumn()).
		Scan(&out)
	if tx.Error != nil {
		return nil, storeErr("list "+c.Table(), tx.Error)
	}
	return out, nil
}

// List returns full rows of the category table.
func (r *PartyRepository) List(ctx context.Context, c domain.Category) ([]domain.Party, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	var out []domain.Party
	tx := r.db.WithContext(ctx).
		Table(c.Table()).
		Select(c.IDColumn() + " AS id, name, phone, email, address").
		Order(c.IDColumn()).
		Scan(&out)
	if tx.Error != nil {
		return nil, storeErr("list "+c.Table(), tx.Error)
	}
	return out, nil
}

// Create inserts p and reads the generated id back from the same statement.
func (r *PartyRepository) Create(ctx context.Context, c domain.Category, p *domain.Party) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	q := fmt.Sprintf(
		"INSERT INTO %s (name, phone, email, address) VALUES (?, ?, ?, ?) RETURNING %s",
		c.Table(), c.IDColumn(),
	)

	var id int64
	tx := r.db.WithContext(ctx).Raw(q, p.Name, p.Phone, p.Email, p.Address).Scan(&id)
	if tx.Error != nil {
		return storeErr("insert "+c.Table(), tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: creating %s failed, no rows affected", domain.ErrCreation, c.Singular())
	}
	if id <= 0 {
		return fmt.Errorf("%w: creating %s failed, no ID obtained", domain.ErrCreation, c.Singular())
	}
	p.ID = id
	return nil
}

// GetName returns the stored name of one party. A missing row yields ok=false and no error.
func (r *PartyRepository) GetName(ctx context.Context, c domain.Category, id int64) (string, bool, error) {
	if !c.Valid() {
		return "", false, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	var names []string
	tx := r.db.WithContext(ctx).
		Table(c.Table()).
		Where(c.IDColumn()+" = ?", id).
		Limit(1).
		Pluck("name", &names)
	if tx.Error != nil {
		return "", false, storeErr("lookup "+c.Singular(), tx.Error)
	}
	if len(names) == 0 {
		return "", false, nil
	}
	return names[0], true, nil
}
