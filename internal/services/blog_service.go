package services

import (
	"strings"
	"time"

	"storefront/internal/apperrors"
	"storefront/internal/models"
	"storefront/internal/repositories"
)

// BlogService handles business logic related to blog posts.
type BlogService struct {
	blogRepo repositories.BlogRepository
	audit    *AuditService
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo repositories.BlogRepository, audit *AuditService) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		audit:    audit,
	}
}

// GetPublishedPosts retrieves all published posts for the public site.
func (s *BlogService) GetPublishedPosts() ([]models.BlogPost, error) {
	return s.blogRepo.GetPublished()
}

// GetAllPosts retrieves all posts, drafts included.
func (s *BlogService) GetAllPosts() ([]models.BlogPost, error) {
	return s.blogRepo.GetAll()
}

// GetPostBySlug retrieves a published post by its slug.
func (s *BlogService) GetPostBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "blog post not found")
	}
	if !post.Published {
		return nil, apperrors.New(apperrors.KindNotFound, "blog post %s not found", slug)
	}
	return post, nil
}

// CreatePost creates a draft post. The slug is derived from the title when
// not supplied.
func (s *BlogService) CreatePost(actor *models.User, post *models.BlogPost) error {
	if post.Slug == "" {
		post.Slug = slugify(post.Title)
	}
	post.AuthorID = actor.ID
	if err := s.blogRepo.Create(post); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, err, "could not create blog post")
	}
	s.audit.Record(actor, "blog.create", "blog_post", post.ID, "created post "+post.Title)
	return nil
}

// UpdatePost edits a post's title and content. The slug stays stable so
// published links keep working.
func (s *BlogService) UpdatePost(actor *models.User, slug, title, content string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "blog post not found")
	}
	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	if err := s.blogRepo.Update(post); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not update blog post")
	}
	s.audit.Record(actor, "blog.update", "blog_post", post.ID, "updated post "+post.Title)
	return post, nil
}

// PublishPost marks a post as published.
func (s *BlogService) PublishPost(actor *models.User, slug string) (*models.BlogPost, error) {
	post, err := s.blogRepo.GetBySlug(slug)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindNotFound, err, "blog post not found")
	}
	if post.Published {
		return post, nil
	}
	now := time.Now()
	post.Published = true
	post.PublishedAt = &now
	if err := s.blogRepo.Update(post); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, err, "could not publish blog post")
	}
	s.audit.Record(actor, "blog.publish", "blog_post", post.ID, "published post "+post.Title)
	return post, nil
}

// slugify lowercases the title and replaces runs of non-alphanumerics with
// single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
