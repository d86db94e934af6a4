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

const postColumns = `
	id, title, content, image_url,
	meta_title, meta_description, meta_keywords, og_image, canonical_url,
	created_at, updated_at`

// PostStore implements domain.PostStore.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new blog post store (DI constructor).
func NewPostStore(db *sql.DB) (*PostStore, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	return &PostStore{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.BlogPost, error) {
	var p domain.BlogPost
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.ImageURL,
		&p.MetaTitle, &p.MetaDescription, textArray(&p.MetaKeywords), &p.OGImage, &p.CanonicalURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts, newest first, with their images.
func (s *PostStore) List(ctx context.Context) ([]*domain.BlogPost, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM blog_posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]*domain.BlogPost, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for _, post := range posts {
		if post.Images, err = postImages.load(ctx, s.db, post.ID); err != nil {
			return nil, err
		}
	}

	return posts, nil
}

// Get returns a post by id.
func (s *PostStore) Get(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	post, err := scanPost(s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if post.Images, err = postImages.load(ctx, s.db, post.ID); err != nil {
		return nil, err
	}

	return post, nil
}

// Create inserts post and its images. A missing id is generated.
func (s *PostStore) Create(ctx context.Context, post *domain.BlogPost) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	now := time.Now().UTC()
	post.CreatedAt, post.UpdatedAt = now, now

	err := runInTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO blog_posts (`+postColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			post.ID, post.Title, post.Content, post.ImageURL,
			post.MetaTitle, post.MetaDescription, nonNil(post.MetaKeywords), post.OGImage, post.CanonicalURL,
			post.CreatedAt, post.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		return postImages.replace(ctx, tx, post.ID, post.Images)
	})
	if err != nil {
		return err
	}

	observability.FromContext(ctx).Info("post created", observability.String("post_id", post.ID.String()))
	return nil
}

// Update overwrites post and replaces its images.
func (s *PostStore) Update(ctx context.Context, post *domain.BlogPost) error {
	if post == nil {
		return errors.New("post cannot be nil")
	}
	post.UpdatedAt = time.Now().UTC()

	return runInTx(ctx, s.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			UPDATE blog_posts SET
				title = $2, content = $3, image_url = $4,
				meta_title = $5, meta_description = $6, meta_keywords = $7,
				og_image = $8, canonical_url = $9, updated_at = $10
			WHERE id = $1
			RETURNING created_at`,
			post.ID, post.Title, post.Content, post.ImageURL,
			post.MetaTitle, post.MetaDescription, nonNil(post.MetaKeywords),
			post.OGImage, post.CanonicalURL, post.UpdatedAt,
		).Scan(&post.CreatedAt)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
			}
			return fmt.Errorf("failed to update post: %w", err)
		}
		return postImages.replace(ctx, tx, post.ID, post.Images)
	})
}

// Delete removes a post; its images cascade.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

var _ domain.PostStore = (*PostStore)(nil)
