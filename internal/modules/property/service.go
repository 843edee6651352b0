package property

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/utils"
	"estateoffice/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	properties PropertyRepository
}

func NewService(properties PropertyRepository) *Service {
	return &Service{properties: properties}
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func (s *Service) Create(ctx context.Context, req CreateRequest, createdBy int64) (*domain.Property, error) {
	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}
	if slug == "" {
		return nil, ErrValidation
	}

	if _, err := s.properties.GetBySlug(ctx, slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = "MAD"
	}

	p := &domain.Property{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: req.Description,
		City:        strings.TrimSpace(req.City),
		Address:     req.Address,
		Price:       req.Price,
		Currency:    currency,
		Surface:     req.Surface,
		Rooms:       req.Rooms,
		Status:      domain.PropertyDraft,
		Photos:      utils.PhotosToString(req.Photos),
		CreatedBy:   createdBy,
	}
	if err := s.properties.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, status, city string, limit, offset int) ([]domain.Property, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.properties.List(ctx, repository.PropertyFilter{
		Status: domain.PropertyStatus(status),
		City:   city,
		Limit:  limit,
		Offset: offset,
	})
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.City != nil {
		p.City = strings.TrimSpace(*req.City)
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrValidation
		}
		p.Price = *req.Price
	}
	if req.Surface != nil {
		p.Surface = *req.Surface
	}
	if req.Rooms != nil {
		p.Rooms = *req.Rooms
	}
	if req.Status != nil {
		switch domain.PropertyStatus(*req.Status) {
		case domain.PropertyDraft, domain.PropertyPublished, domain.PropertyArchived:
			p.Status = domain.PropertyStatus(*req.Status)
		default:
			return nil, ErrValidation
		}
	}
	if req.Photos != nil {
		p.Photos = utils.PhotosToString(req.Photos)
	}

	if err := s.properties.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.properties.Delete(ctx, id)
}
