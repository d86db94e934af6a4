package httpserver

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

// HandlePublicSettings returns the settings visible to site visitors.
func (h *Handler) HandlePublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, settings.Public())
}

// HandleGetSettings returns the full settings row, secrets included.
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, settings)
}

// HandleUpdateSettings applies the fields present in the body to the settings row.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.settings.Get(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id := settings.ID

	if err = decodeJSON(w, r, settings); err != nil {
		writeError(w, r, err)
		return
	}
	settings.ID = id

	if err = h.validate.StructCtx(ctx, settings); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.settings.Update(ctx, settings); err != nil {
		writeError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("site settings updated")
	writeJSON(w, r, http.StatusOK, settings)
}

// HandleListPosts lists blog posts, newest first.
func (h *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, posts)
}

// HandleGetPost returns one blog post.
func (h *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, post)
}

// HandleCreatePost creates a blog post.
func (h *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var post domain.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.validate.StructCtx(ctx, &post); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.posts.Create(ctx, &post); err != nil {
		writeError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("post created", observability.String("post_id", post.ID.String()))
	writeJSON(w, r, http.StatusCreated, &post)
}

// HandleUpdatePost replaces a blog post.
func (h *Handler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var post domain.BlogPost
	if err = decodeJSON(w, r, &post); err != nil {
		writeError(w, r, err)
		return
	}
	post.ID = id

	if err = h.validate.StructCtx(ctx, &post); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.posts.Update(ctx, &post); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, &post)
}

// HandleDeletePost deletes a blog post with its images.
func (h *Handler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.posts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleListPublishedProjects lists projects visible on the site.
func (h *Handler) HandleListPublishedProjects(w http.ResponseWriter, r *http.Request) {
	h.listProjects(w, r, true)
}

// HandleListProjects lists every project, drafts included.
func (h *Handler) HandleListProjects(w http.ResponseWriter, r *http.Request) {
	h.listProjects(w, r, false)
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request, publishedOnly bool) {
	projects, err := h.projects.List(r.Context(), publishedOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, projects)
}

// HandleGetProjectBySlug returns a published project. Drafts are reported as missing.
func (h *Handler) HandleGetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projects.GetBySlug(r.Context(), slug)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if project.Status != domain.ProjectPublished {
		writeError(w, r, fmt.Errorf("project %s: %w", slug, domain.ErrNotFound))
		return
	}
	writeJSON(w, r, http.StatusOK, project)
}

// HandleGetProject returns one project by id.
func (h *Handler) HandleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, project)
}

// HandleCreateProject creates a project. Projects start as drafts.
func (h *Handler) HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var project domain.Project
	if err := decodeJSON(w, r, &project); err != nil {
		writeError(w, r, err)
		return
	}
	if project.Status == "" {
		project.Status = domain.ProjectDraft
	}

	if err := h.validate.StructCtx(ctx, &project); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.projects.Create(ctx, &project); err != nil {
		writeError(w, r, err)
		return
	}

	observability.FromContext(ctx).Info("project created", observability.String("project_id", project.ID.String()))
	writeJSON(w, r, http.StatusCreated, &project)
}

// HandleUpdateProject replaces a project.
func (h *Handler) HandleUpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var project domain.Project
	if err = decodeJSON(w, r, &project); err != nil {
		writeError(w, r, err)
		return
	}
	project.ID = id
	if project.Status == "" {
		project.Status = domain.ProjectDraft
	}

	if err = h.validate.StructCtx(ctx, &project); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.projects.Update(ctx, &project); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, &project)
}

// HandleDeleteProject deletes a project with its images and technologies.
func (h *Handler) HandleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.projects.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
