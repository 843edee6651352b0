package blog

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"estateoffice/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	posts BlogRepository
}

func NewService(posts BlogRepository) *Service {
	return &Service{posts: posts}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *Service) Create(ctx context.Context, req CreateRequest, authorID int64) (*domain.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	if slug == "" {
		return nil, ErrValidation
	}

	post := &domain.BlogPost{
		Title:    strings.TrimSpace(req.Title),
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		AuthorID: authorID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *Service) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]domain.BlogPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.posts.List(ctx, publishedOnly, limit, offset)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.BlogPost, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.CoverURL != nil {
		post.CoverURL = *req.CoverURL
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *Service) Publish(ctx context.Context, id int64) (*domain.BlogPost, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	if err := s.posts.Publish(ctx, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}
