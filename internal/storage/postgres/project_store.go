package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const projectColumns = `
	id, title, description, image_url,
	meta_title, meta_description, meta_keywords, og_image, og_description, canonical_url,
	status, slug, featured, sort_order,
	created_at, updated_at`

// ProjectStore implements domain.ProjectStore.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new project store (DI constructor).
func NewProjectStore(db *sql.DB) (*ProjectStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	return &ProjectStore{db: db}, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p      domain.Project
		status string
		slug   sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL,
		&p.MetaTitle, &p.MetaDescription, textArray(&p.MetaKeywords), &p.OGImage, &p.OGDescription, &p.CanonicalURL,
		&status, &slug, &p.Featured, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = domain.ProjectStatus(status)
	p.Slug = slug.String
	return &p, nil
}

func nullableSlug(slug string) sql.NullString {
	return sql.NullString{String: slug, Valid: slug != ""}
}

// List returns projects ordered by sort_order, newest first within a position.
func (s *ProjectStore) List(ctx context.Context, publishedOnly bool) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	args := []any{}
	if publishedOnly {
		query += ` WHERE status = $1`
		args = append(args, string(domain.ProjectPublished))
	}
	query += ` ORDER BY sort_order, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	for _, project := range projects {
		if err := s.loadChildren(ctx, project); err != nil {
			return nil, err
		}
	}

	return projects, nil
}

// Get returns a project by id.
func (s *ProjectStore) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.getOne(ctx, `WHERE id = $1`, id, id.String())
}

// GetBySlug returns a project by its URL slug.
func (s *ProjectStore) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	if slug == "" {
		return nil, fmt.Errorf("project slug: %w", domain.ErrNotFound)
	}
	return s.getOne(ctx, `WHERE slug = $1`, slug, slug)
}

func (s *ProjectStore) getOne(ctx context.Context, where string, arg any, label string) (*domain.Project, error) {
	project, err := scanProject(s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects `+where, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("project %s: %w", label, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.loadChildren(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectStore) loadChildren(ctx context.Context, project *domain.Project) error {
	var err error
	if project.Images, err = projectImages.load(ctx, s.db, project.ID); err != nil {
		return err
	}
	project.Technologies, err = loadTechnologies(ctx, s.db, project.ID)
	return err
}

// Create inserts project with its images and technologies.
func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.Status == "" {
		project.Status = domain.ProjectDraft
	}
	now := time.Now().UTC()
	project.CreatedAt, project.UpdatedAt = now, now

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO projects (`+projectColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			project.ID, project.Title, project.Description, project.ImageURL,
			project.MetaTitle, project.MetaDescription, nonNil(project.MetaKeywords),
			project.OGImage, project.OGDescription, project.CanonicalURL,
			string(project.Status), nullableSlug(project.Slug), project.Featured, project.SortOrder,
			project.CreatedAt, project.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
		return s.replaceChildren(ctx, tx, project)
	})
	if err != nil {
		return err
	}

	observability.FromContext(ctx).Info("project created", observability.String("project_id", project.ID.String()))
	return nil
}

// Update overwrites project and replaces its images and technologies.
func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	project.UpdatedAt = time.Now().UTC()

	return runInTx(ctx, s.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			UPDATE projects SET
				title = $2, description = $3, image_url = $4,
				meta_title = $5, meta_description = $6, meta_keywords = $7,
				og_image = $8, og_description = $9, canonical_url = $10,
				status = $11, slug = $12, featured = $13, sort_order = $14, updated_at = $15
			WHERE id = $1
			RETURNING created_at`,
			project.ID, project.Title, project.Description, project.ImageURL,
			project.MetaTitle, project.MetaDescription, nonNil(project.MetaKeywords),
			project.OGImage, project.OGDescription, project.CanonicalURL,
			string(project.Status), nullableSlug(project.Slug), project.Featured, project.SortOrder,
			project.UpdatedAt,
		).Scan(&project.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("project %s: %w", project.ID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to update project: %w", err)
		}
		return s.replaceChildren(ctx, tx, project)
	})
}

func (s *ProjectStore) replaceChildren(ctx context.Context, tx *sql.Tx, project *domain.Project) error {
	if err := projectImages.replace(ctx, tx, project.ID, project.Images); err != nil {
		return err
	}
	return replaceTechnologies(ctx, tx, project.ID, project.Technologies)
}

// Delete removes a project; images and technologies cascade.
func (s *ProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

func loadTechnologies(ctx context.Context, q queryer, projectID uuid.UUID) ([]domain.Technology, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, icon_url, color, sort_order
		FROM project_technologies WHERE project_id = $1
		ORDER BY sort_order, created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load technologies: %w", err)
	}
	defer rows.Close()

	technologies := make([]domain.Technology, 0)
	for rows.Next() {
		var tech domain.Technology
		if err := rows.Scan(&tech.ID, &tech.Name, &tech.IconURL, &tech.Color, &tech.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan technology: %w", err)
		}
		technologies = append(technologies, tech)
	}

	return technologies, rows.Err()
}

func replaceTechnologies(ctx context.Context, q queryer, projectID uuid.UUID, technologies []domain.Technology) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM project_technologies WHERE project_id = $1`, projectID); err != nil {
		return fmt.Errorf("failed to clear technologies: %w", err)
	}

	for i := range technologies {
		if technologies[i].ID == uuid.Nil {
			technologies[i].ID = uuid.New()
		}
		_, err := q.ExecContext(ctx, `
			INSERT INTO project_technologies (id, project_id, name, icon_url, color, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			technologies[i].ID, projectID, technologies[i].Name,
			technologies[i].IconURL, technologies[i].Color, technologies[i].SortOrder)
		if err != nil {
			return fmt.Errorf("failed to insert technology: %w", err)
		}
	}

	return nil
}

var _ domain.ProjectStore = (*ProjectStore)(nil)
