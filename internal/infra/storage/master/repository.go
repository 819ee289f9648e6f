package master

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/olhgfsaw/salon-booking-service/internal/domain"
	"github.com/olhgfsaw/salon-booking-service/pkg/dbmetrics"
	"github.com/olhgfsaw/salon-booking-service/pkg/psqlbuilder"
)

// masterColumns полный список колонок таблицы masters
var masterColumns = []string{
	"id",
	"user_id",
	"salon_ids",
	"service_ids",
	"working_hours",
	"status",
	"specialization",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с мастерами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового мастера
func (r *Repository) Create(ctx context.Context, master *domain.Master) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("masters").
		Columns(
			"id",
			"user_id",
			"salon_ids",
			"service_ids",
			"working_hours",
			"status",
			"specialization",
		).
		Values(
			master.ID,
			master.UserID,
			pq.Array(master.SalonIDs),
			pq.Array(master.ServiceIDs),
			master.WorkingHours,
			master.Status,
			master.Specialization,
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

	master.CreatedAt = createdAt.Time
	master.UpdatedAt = updatedAt.Time

	return master, nil
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	master, err := scanMaster(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan master: %v", ErrScanRow, err)
	}

	return master, nil
}

// GetByUserID получает мастера по ID его пользователя
func (r *Repository) GetByUserID(ctx context.Context, userID string) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	master, err := scanMaster(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan master: %v", ErrScanRow, err)
	}

	return master, nil
}

// ListBySalon получает всех мастеров, привязанных к салону
func (r *Repository) ListBySalon(ctx context.Context, salonID string) ([]*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(masterColumns...).
		From("masters").
		Where(squirrel.Expr("? = ANY(salon_ids)", salonID)).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	masters := make([]*domain.Master, 0)
	for rows.Next() {
		master, err := scanMaster(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySalon - scan master: %v", ErrScanRow, err)
		}
		masters = append(masters, master)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - rows error: %v", ErrScanRow, err)
	}

	return masters, nil
}

// UpdateParams параметры частичного обновления мастера
// nil-поле означает "не менять"
type UpdateParams struct {
	SalonIDs       []string
	ServiceIDs     []string
	WorkingHours   *domain.WorkingHours
	Status         *domain.MasterStatus
	Specialization *string
}

// Update частично обновляет мастера и возвращает обновлённую версию
func (r *Repository) Update(ctx context.Context, id string, params UpdateParams) (*domain.Master, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("masters").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, user_id, salon_ids, service_ids, working_hours, status, specialization, created_at, updated_at")

	if params.SalonIDs != nil {
		updateBuilder = updateBuilder.Set("salon_ids", pq.Array(params.SalonIDs))
	}
	if params.ServiceIDs != nil {
		updateBuilder = updateBuilder.Set("service_ids", pq.Array(params.ServiceIDs))
	}
	if params.WorkingHours != nil {
		updateBuilder = updateBuilder.Set("working_hours", *params.WorkingHours)
	}
	if params.Status != nil {
		updateBuilder = updateBuilder.Set("status", *params.Status)
	}
	if params.Specialization != nil {
		updateBuilder = updateBuilder.Set("specialization", *params.Specialization)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	master, err := scanMaster(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrMasterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan master: %v", ErrScanRow, err)
	}

	return master, nil
}

// scanMaster сканирует одного мастера из строки результата
func scanMaster(scan func(dest ...interface{}) error) (*domain.Master, error) {
	var master domain.Master
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&master.ID,
		&master.UserID,
		pq.Array(&master.SalonIDs),
		pq.Array(&master.ServiceIDs),
		&master.WorkingHours,
		&master.Status,
		&master.Specialization,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	master.CreatedAt = createdAt.Time
	master.UpdatedAt = updatedAt.Time

	return &master, nil
}
