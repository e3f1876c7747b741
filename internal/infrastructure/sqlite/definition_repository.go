package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

const definitionColumns = `id, definition_key, name, category, version, tenant_id, deployment_id, resource_name`

// definitionRepository implements domain.DefinitionRepository using SQLite.
type definitionRepository struct {
	db *sql.DB
}

func newDefinitionRepository(db *sql.DB) *definitionRepository {
	return &definitionRepository{db: db}
}

var _ domain.DefinitionRepository = (*definitionRepository)(nil)

func scanDefinition(scanner interface{ Scan(...any) error }) (*DefinitionModel, error) {
	var model DefinitionModel
	err := scanner.Scan(
		&model.ID, &model.Key, &model.Name, &model.Category, &model.Version,
		&model.TenantID, &model.DeploymentID, &model.ResourceName,
	)
	return &model, err
}

// SaveAll inserts every definition or none.
func (r *definitionRepository) SaveAll(ctx context.Context, defs []*domain.EventDefinition) error {
	if len(defs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, def := range defs {
		if def.ID() == "" {
			return fmt.Errorf("event definition %s has no id", def.Key())
		}
		m := toDefinitionModel(def)
		_, err := tx.ExecContext(ctx,
			`INSERT INTO event_definitions (`+definitionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.Key, m.Name, m.Category, m.Version, m.TenantID, m.DeploymentID, m.ResourceName,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event definition %s: %w", m.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event definitions: %w", err)
	}
	return nil
}

// FindByID returns DefinitionNotFoundError if no definition matches.
func (r *definitionRepository) FindByID(ctx context.Context, id string) (*domain.EventDefinition, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+definitionColumns+` FROM event_definitions WHERE id = ?`, id)
	model, err := scanDefinition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.DefinitionNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event definition: %w", err)
	}
	return model.toDomain(), nil
}

// FindLatestByKey returns the highest version of key for tenantID.
func (r *definitionRepository) FindLatestByKey(ctx context.Context, key, tenantID string) (*domain.EventDefinition, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+definitionColumns+` FROM event_definitions
		WHERE definition_key = ? AND tenant_id = ?
		ORDER BY version DESC
		LIMIT 1`,
		key, tenantID,
	)
	model, err := scanDefinition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.DefinitionNotFoundError{Key: key, TenantID: tenantID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find latest event definition: %w", err)
	}
	return model.toDomain(), nil
}

// LatestVersion returns 0 when key has never been deployed for tenantID.
func (r *definitionRepository) LatestVersion(ctx context.Context, key, tenantID string) (int, error) {
	var version int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM event_definitions WHERE definition_key = ? AND tenant_id = ?`,
		key, tenantID,
	).Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to query latest version: %w", err)
	}
	return version, nil
}

// List returns definitions matching query ordered by key, tenant and version.
func (r *definitionRepository) List(ctx context.Context, query domain.DefinitionQuery) ([]*domain.EventDefinition, error) {
	var (
		where []string
		args  []any
	)
	if query.Key != "" {
		where = append(where, "d.definition_key = ?")
		args = append(args, query.Key)
	}
	if !query.AnyTenant {
		where = append(where, "d.tenant_id = ?")
		args = append(args, query.TenantID)
	}
	if query.DeploymentID != "" {
		where = append(where, "d.deployment_id = ?")
		args = append(args, query.DeploymentID)
	}
	if query.LatestOnly {
		where = append(where, `d.version = (
			SELECT MAX(l.version) FROM event_definitions l
			WHERE l.definition_key = d.definition_key AND l.tenant_id = d.tenant_id)`)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + prefixColumns("d", definitionColumns) + ` FROM event_definitions d`)
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sb.WriteString(" ORDER BY d.definition_key, d.tenant_id, d.version")
	if query.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, query.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list event definitions: %w", err)
	}
	defer rows.Close()

	var defs []*domain.EventDefinition
	for rows.Next() {
		model, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event definition: %w", err)
		}
		defs = append(defs, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event definitions: %w", err)
	}
	return defs, nil
}

// DeleteByDeployment removes all definitions of a deployment.
func (r *definitionRepository) DeleteByDeployment(ctx context.Context, deploymentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM event_definitions WHERE deployment_id = ?`, deploymentID)
	if err != nil {
		return fmt.Errorf("failed to delete event definitions: %w", err)
	}
	return nil
}

// prefixColumns qualifies each column of a comma-separated list with alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
