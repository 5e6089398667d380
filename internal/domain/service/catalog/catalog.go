package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"deal_service/internal/domain"
	"deal_service/internal/domain/entity"
	"deal_service/pkg/errcodes"
)

const (
	nameMaxLen    = 255
	tagNameMaxLen = 100
)

//go:generate moq -rm -out catalog_mock.gen.go . CompanyRepository DistributorRepository TagRepository

type CompanyRepository interface {
	Create(ctx context.Context, name string, address *string) (*entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type DistributorRepository interface {
	Create(ctx context.Context, name, contactEmail string) (*entity.Distributor, error)
	GetByID(ctx context.Context, id int64) (*entity.Distributor, error)
	List(ctx context.Context) ([]*entity.Distributor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type TagRepository interface {
	Create(ctx context.Context, name string) (*entity.Tag, error)
	GetByID(ctx context.Context, id int64) (*entity.Tag, error)
	List(ctx context.Context) ([]*entity.Tag, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service управляет справочниками, на которые ссылаются сделки.
type Service struct {
	companies    CompanyRepository
	distributors DistributorRepository
	tags         TagRepository
}

func NewService(
	companies CompanyRepository,
	distributors DistributorRepository,
	tags TagRepository,
) *Service {
	return &Service{
		companies:    companies,
		distributors: distributors,
		tags:         tags,
	}
}

func (s *Service) CreateCompany(ctx context.Context, name string, address *string) (*entity.Company, error) {
	if err := validateName(name, nameMaxLen); err != nil {
		return nil, err
	}

	company, err := s.companies.Create(ctx, strings.TrimSpace(name), address)
	if err != nil {
		return nil, fmt.Errorf("companies.Create: %w", err)
	}

	return company, nil
}

func (s *Service) Company(ctx context.Context, id int64) (*entity.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("companies.GetByID: %w", err)
	}

	return company, nil
}

func (s *Service) Companies(ctx context.Context) ([]*entity.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("companies.List: %w", err)
	}

	return companies, nil
}

// DeleteCompany удаляет компанию. Её сделки удаляются каскадно, события
// по ним не отправляются.
func (s *Service) DeleteCompany(ctx context.Context, id int64) error {
	removed, err := s.companies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("companies.Delete: %w", err)
	}

	if !removed {
		return domain.Errorf(errcodes.CompanyNotFound, "company %d not found", id)
	}

	return nil
}

func (s *Service) CreateDistributor(ctx context.Context, name, contactEmail string) (*entity.Distributor, error) {
	if err := validateName(name, nameMaxLen); err != nil {
		return nil, err
	}

	distributor, err := s.distributors.Create(ctx, strings.TrimSpace(name), contactEmail)
	if err != nil {
		return nil, fmt.Errorf("distributors.Create: %w", err)
	}

	return distributor, nil
}

func (s *Service) Distributor(ctx context.Context, id int64) (*entity.Distributor, error) {
	distributor, err := s.distributors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("distributors.GetByID: %w", err)
	}

	return distributor, nil
}

func (s *Service) Distributors(ctx context.Context) ([]*entity.Distributor, error) {
	distributors, err := s.distributors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("distributors.List: %w", err)
	}

	return distributors, nil
}

func (s *Service) DeleteDistributor(ctx context.Context, id int64) error {
	removed, err := s.distributors.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("distributors.Delete: %w", err)
	}

	if !removed {
		return domain.Errorf(errcodes.DistributorNotFound, "distributor %d not found", id)
	}

	return nil
}

func (s *Service) CreateTag(ctx context.Context, name string) (*entity.Tag, error) {
	if err := validateName(name, tagNameMaxLen); err != nil {
		return nil, err
	}

	tag, err := s.tags.Create(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("tags.Create: %w", err)
	}

	return tag, nil
}

func (s *Service) Tag(ctx context.Context, id int64) (*entity.Tag, error) {
	tag, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("tags.GetByID: %w", err)
	}

	return tag, nil
}

func (s *Service) Tags(ctx context.Context) ([]*entity.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tags.List: %w", err)
	}

	return tags, nil
}

func (s *Service) DeleteTag(ctx context.Context, id int64) error {
	removed, err := s.tags.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("tags.Delete: %w", err)
	}

	if !removed {
		return domain.Errorf(errcodes.TagNotFound, "tag %d not found", id)
	}

	return nil
}

func validateName(name string, maxLen int) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return domain.NewError(errcodes.InvalidName, "name must not be blank")
	}

	if utf8.RuneCountInString(name) > maxLen {
		return domain.Errorf(errcodes.InvalidName, "name must be at most %d characters", maxLen)
	}

	return nil
}
