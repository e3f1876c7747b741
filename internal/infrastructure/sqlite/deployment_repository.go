package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

const deploymentColumns = `id, name, category, parent_deployment_id, tenant_id, deployed_at`

// deploymentRepository implements domain.DeploymentRepository using SQLite.
type deploymentRepository struct {
	db *sql.DB
}

func newDeploymentRepository(db *sql.DB) *deploymentRepository {
	return &deploymentRepository{db: db}
}

var _ domain.DeploymentRepository = (*deploymentRepository)(nil)

func scanDeployment(scanner interface{ Scan(...any) error }) (*DeploymentModel, error) {
	var model DeploymentModel
	err := scanner.Scan(
		&model.ID, &model.Name, &model.Category,
		&model.ParentDeploymentID, &model.TenantID, &model.DeployedAt,
	)
	return &model, err
}

// Save inserts the deployment and its resources in one transaction.
func (r *deploymentRepository) Save(ctx context.Context, dep *domain.Deployment) error {
	model := toDeploymentModel(dep)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO deployments (`+deploymentColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		model.ID, model.Name, model.Category, model.ParentDeploymentID, model.TenantID, model.DeployedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert deployment: %w", err)
	}

	for _, res := range toResourceModels(dep) {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO deployment_resources (deployment_id, position, name, content) VALUES (?, ?, ?, ?)`,
			res.DeploymentID, res.Position, res.Name, res.Content,
		)
		if err != nil {
			return fmt.Errorf("failed to insert resource %s: %w", res.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deployment: %w", err)
	}
	return nil
}

// FindByID returns DeploymentNotFoundError if no deployment matches.
func (r *deploymentRepository) FindByID(ctx context.Context, id string) (*domain.Deployment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+deploymentColumns+` FROM deployments WHERE id = ?`, id)
	model, err := scanDeployment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.DeploymentNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find deployment: %w", err)
	}
	return r.withResources(ctx, model)
}

// FindLatestByName returns the most recently deployed deployment with name and tenant.
func (r *deploymentRepository) FindLatestByName(ctx context.Context, name, tenantID string) (*domain.Deployment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+deploymentColumns+` FROM deployments
		WHERE name = ? AND tenant_id = ?
		ORDER BY deployed_at DESC, rowid DESC
		LIMIT 1`,
		name, tenantID,
	)
	model, err := scanDeployment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.DeploymentNotFoundError{Name: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest deployment: %w", err)
	}
	return r.withResources(ctx, model)
}

func (r *deploymentRepository) withResources(ctx context.Context, model *DeploymentModel) (*domain.Deployment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT deployment_id, position, name, content FROM deployment_resources
		WHERE deployment_id = ? ORDER BY position`,
		model.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query resources: %w", err)
	}
	defer rows.Close()

	var resources []ResourceModel
	for rows.Next() {
		var res ResourceModel
		if err := rows.Scan(&res.DeploymentID, &res.Position, &res.Name, &res.Content); err != nil {
			return nil, fmt.Errorf("failed to scan resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}
	return model.toDomain(resources), nil
}

// Delete removes the deployment. Resources and definitions cascade.
func (r *deploymentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM deployments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deployment: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return &domain.DeploymentNotFoundError{ID: id}
	}
	return nil
}
