package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"poisepms/internal/domain"
	"poisepms/internal/pkg/sqlset"
)

const (
	projectsTable    = "projects"
	projectKeyColumn = "project_id"
)

type projectModel struct {
	ID             int64      `gorm:"column:project_id;primaryKey;autoIncrement"`
	Name           string     `gorm:"column:project_name;index"`
	BuildingType   string     `gorm:"column:building_type"`
	Address        string     `gorm:"column:project_address"`
	ERFNumber      string     `gorm:"column:erf_number"`
	TotalFee       float64    `gorm:"column:total_fee"`
	AmountPaid     float64    `gorm:"column:amount_paid"`
	Deadline       time.Time  `gorm:"column:deadline;type:date;index"`
	CompletionDate *time.Time `gorm:"column:completion_date;type:date"`
	IsFinalized    bool       `gorm:"column:is_finalized;not null;default:false"`
	Description    string     `gorm:"column:description;type:text"`
	EngineerID     int64      `gorm:"column:engineer_id;index"`
	ManagerID      int64      `gorm:"column:manager_id;index"`
	ArchitectID    int64      `gorm:"column:architect_id;index"`
	CustomerID     int64      `gorm:"column:customer_id;index"`
}

func (projectModel) TableName() string { return projectsTable }

func toDomainProject(m projectModel) domain.Project {
	return domain.Project{
		ID:             m.ID,
		Name:           m.Name,
		BuildingType:   m.BuildingType,
		Address:        m.Address,
		ERFNumber:      m.ERFNumber,
		TotalFee:       m.TotalFee,
		AmountPaid:     m.AmountPaid,
		Deadline:       m.Deadline,
		CompletionDate: m.CompletionDate,
		IsFinalized:    m.IsFinalized,
		Description:    m.Description,
		EngineerID:     m.EngineerID,
		ManagerID:      m.ManagerID,
		ArchitectID:    m.ArchitectID,
		CustomerID:     m.CustomerID,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	return projectModel{
		ID:             p.ID,
		Name:           p.Name,
		BuildingType:   p.BuildingType,
		Address:        p.Address,
		ERFNumber:      p.ERFNumber,
		TotalFee:       p.TotalFee,
		AmountPaid:     p.AmountPaid,
		Deadline:       domain.DateOf(p.Deadline),
		CompletionDate: p.CompletionDate,
		IsFinalized:    p.IsFinalized,
		Description:    p.Description,
		EngineerID:     p.EngineerID,
		ManagerID:      p.ManagerID,
		ArchitectID:    p.ArchitectID,
		CustomerID:     p.CustomerID,
	}
}

func toDomainProjects(ms []projectModel) []domain.Project {
	out := make([]domain.Project, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainProject(m))
	}
	return out
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts p as a new, unfinalized project and returns the rows affected.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (int64, error) {
	m := toProjectModel(p)
	m.ID = 0
	m.IsFinalized = false
	m.CompletionDate = nil

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return 0, storeErr("insert project", tx.Error)
	}
	*p = toDomainProject(m)
	return tx.RowsAffected, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).Where(projectKeyColumn+" = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, storeErr("get project", tx.Error)
	}
	p := toDomainProject(m)
	return &p, nil
}

// GetByName returns the lowest-id project with exactly this name.
func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).
		Where("project_name = ?", name).
		Order(projectKeyColumn).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, storeErr("get project by name", tx.Error)
	}
	p := toDomainProject(m)
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	var ms []projectModel
	if err := r.db.WithContext(ctx).Order(projectKeyColumn).Find(&ms).Error; err != nil {
		return nil, storeErr("list projects", err)
	}
	return toDomainProjects(ms), nil
}

func (r *ProjectRepository) ListUncompleted(ctx context.Context) ([]domain.Project, error) {
	var ms []projectModel
	tx := r.db.WithContext(ctx).
		Where("is_finalized = ?", false).
		Order(projectKeyColumn).
		Find(&ms)
	if tx.Error != nil {
		return nil, storeErr("list uncompleted projects", tx.Error)
	}
	return toDomainProjects(ms), nil
}

// ListOverdue returns open projects whose deadline is strictly before today.
func (r *ProjectRepository) ListOverdue(ctx context.Context, today time.Time) ([]domain.Project, error) {
	var ms []projectModel
	tx := r.db.WithContext(ctx).
		Where("deadline < ? AND is_finalized = ?", domain.DateOf(today), false).
		Order("deadline, " + projectKeyColumn).
		Find(&ms)
	if tx.Error != nil {
		return nil, storeErr("list overdue projects", tx.Error)
	}
	return toDomainProjects(ms), nil
}

// UpdateFields applies the assignments in set to one project.
func (r *ProjectRepository) UpdateFields(ctx context.Context, id int64, set *sqlset.Builder) (int64, error) {
	assignments, err := set.Clause()
	if err != nil {
		return 0, err
	}
	tx := r.db.WithContext(ctx).Exec("UPDATE "+projectsTable+" ? WHERE "+projectKeyColumn+" = ?", assignments, id)
	if tx.Error != nil {
		return 0, storeErr("update project", tx.Error)
	}
	return tx.RowsAffected, nil
}

// Finalize marks a project finalized with the given completion date. The
// current state is not checked, so a second call overwrites the date.
func (r *ProjectRepository) Finalize(ctx context.Context, id int64, completed time.Time) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&projectModel{}).
		Where(projectKeyColumn+" = ?", id).
		Updates(map[string]interface{}{
			"is_finalized":    true,
			"completion_date": domain.DateOf(completed),
		})
	if tx.Error != nil {
		return 0, storeErr("finalize project", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Where(projectKeyColumn+" = ?", id).Delete(&projectModel{})
	if tx.Error != nil {
		return 0, storeErr("delete project", tx.Error)
	}
	return tx.RowsAffected, nil
}
