package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/davidbz/nepersonaj/internal/domain"
)

// imageTable describes a child table holding images of a parent row.
type imageTable struct {
	name      string
	parentKey string
}

//nolint:gochecknoglobals // fixed table descriptors
var (
	postImages    = imageTable{name: "blog_post_images", parentKey: "post_id"}
	projectImages = imageTable{name: "project_images", parentKey: "project_id"}
)

func (t imageTable) load(ctx context.Context, q queryer, parentID uuid.UUID) ([]domain.Image, error) {
	query := fmt.Sprintf(`
		SELECT id, image_url, alt_text, sort_order
		FROM %s WHERE %s = $1
		ORDER BY sort_order, created_at`, t.name, t.parentKey)

	rows, err := q.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", t.name, err)
	}
	defer rows.Close()

	images := make([]domain.Image, 0)
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.AltText, &img.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", t.name, err)
		}
		images = append(images, img)
	}

	return images, rows.Err()
}

// replace swaps the full image set of parentID.
func (t imageTable) replace(ctx context.Context, q queryer, parentID uuid.UUID, images []domain.Image) error {
	if _, err := q.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.name, t.parentKey), parentID); err != nil {
		return fmt.Errorf("failed to clear %s: %w", t.name, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (id, %s, image_url, alt_text, sort_order)
		VALUES ($1, $2, $3, $4, $5)`, t.name, t.parentKey)

	for i := range images {
		if images[i].ID == uuid.Nil {
			images[i].ID = uuid.New()
		}
		if _, err := q.ExecContext(ctx, insert,
			images[i].ID, parentID, images[i].ImageURL, images[i].AltText, images[i].SortOrder); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", t.name, err)
		}
	}

	return nil
}
