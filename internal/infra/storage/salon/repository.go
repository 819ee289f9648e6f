package salon

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/dbmetrics"
	"github.com/olhgfsaw/salon-booking-service/pkg/psqlbuilder"
)

// salonColumns полный список колонок таблицы salons
var salonColumns = []string{
	"id",
	"name",
	"address",
	"city",
	"phone",
	"email",
	"working_hours",
	"manager_ids",
	"services",
	"created_at",
	"updated_at",
}

// servicesColumn услуги салона, хранятся в БД как JSONB
type servicesColumn []domain.Service

func (s servicesColumn) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *servicesColumn) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into services", src)
	}
}

// Repository репозиторий для работы с салонами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый салон
func (r *Repository) Create(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("salons").
		Columns(
			"id",
			"name",
			"address",
			"city",
			"phone",
			"email",
			"working_hours",
			"manager_ids",
			"services",
		).
		Values(
			salon.ID,
			salon.Name,
			salon.Address,
			salon.City,
			salon.Phone,
			salon.Email,
			salon.WorkingHours,
			pq.Array(salon.ManagerIDs),
			servicesColumn(salon.Services),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return salon, nil
}

// GetByID получает салон по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	salon, err := scanSalon(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// List получает все салоны
func (r *Repository) List(ctx context.Context) ([]*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(salonColumns...).
		From("salons").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salons := make([]*domain.Salon, 0)
	for rows.Next() {
		salon, err := scanSalon(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan salon: %v", ErrScanRow, err)
		}
		salons = append(salons, salon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return salons, nil
}

// UpdateParams параметры частичного обновления салона
// nil-поле означает "не менять"
type UpdateParams struct {
	Name         *string
	Address      *string
	City         *string
	Phone        *string
	Email        *string
	WorkingHours *domain.WorkingHours
	ManagerIDs   []string
	Services     []domain.Service
}

// Update частично обновляет салон и возвращает обновлённую версию
func (r *Repository) Update(ctx context.Context, id string, params UpdateParams) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("salons").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, address, city, phone, email, working_hours, manager_ids, services, created_at, updated_at")

	if params.Name != nil {
		updateBuilder = updateBuilder.Set("name", *params.Name)
	}
	if params.Address != nil {
		updateBuilder = updateBuilder.Set("address", *params.Address)
	}
	if params.City != nil {
		updateBuilder = updateBuilder.Set("city", *params.City)
	}
	if params.Phone != nil {
		updateBuilder = updateBuilder.Set("phone", *params.Phone)
	}
	if params.Email != nil {
		updateBuilder = updateBuilder.Set("email", *params.Email)
	}
	if params.WorkingHours != nil {
		updateBuilder = updateBuilder.Set("working_hours", *params.WorkingHours)
	}
	if params.ManagerIDs != nil {
		updateBuilder = updateBuilder.Set("manager_ids", pq.Array(params.ManagerIDs))
	}
	if params.Services != nil {
		updateBuilder = updateBuilder.Set("services", servicesColumn(params.Services))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	salon, err := scanSalon(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan salon: %v", ErrScanRow, err)
	}

	return salon, nil
}

// Delete удаляет салон по ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("salons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSalonNotFound
	}

	return nil
}

// scanSalon сканирует один салон из строки результата
func scanSalon(scan func(dest ...interface{}) error) (*domain.Salon, error) {
	var salon domain.Salon
	var services servicesColumn
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&salon.ID,
		&salon.Name,
		&salon.Address,
		&salon.City,
		&salon.Phone,
		&salon.Email,
		&salon.WorkingHours,
		pq.Array(&salon.ManagerIDs),
		&services,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	salon.Services = services
	salon.CreatedAt = createdAt.Time
	salon.UpdatedAt = updatedAt.Time

	return &salon, nil
}
