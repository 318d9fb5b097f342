package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/vallapuneni6-prog/Ansira-Salon/internal/db"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/domain"
	"github.com/vallapuneni6-prog/Ansira-Salon/internal/repository"
)

// SalonService handles outlet onboarding and the salon directory.
type SalonService struct {
	db        *db.Postgres
	salons    repository.SalonRepository
	templates repository.TemplateRepository
	users     repository.UserRepository
}

func NewSalonService(database *db.Postgres, salons repository.SalonRepository, templates repository.TemplateRepository, users repository.UserRepository) *SalonService {
	return &SalonService{db: database, salons: salons, templates: templates, users: users}
}

// OnboardInput creates a salon. When ManagerUsername is set a manager account
// scoped to the new salon is created alongside.
type OnboardInput struct {
	Salon           domain.Salon
	ManagerUsername string
	ManagerPassword string
}

// Onboard creates the salon, attaches every package template to it and
// optionally creates the manager account, all in one transaction. Template
// attachment is idempotent, so re-running onboarding never duplicates plans.
func (s *SalonService) Onboard(ctx context.Context, in OnboardInput) (*domain.Salon, error) {
	var hash *string
	if in.ManagerUsername != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.ManagerPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hs := string(h)
		hash = &hs
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	salon, err := s.salons.CreateWith(ctx, tx, in.Salon)
	if err != nil {
		return nil, err
	}
	if err := s.templates.AttachSalonAll(ctx, tx, salon.ID); err != nil {
		return nil, err
	}

	if in.ManagerUsername != "" {
		if _, err := s.users.CreateWith(ctx, tx, repository.CreateUserParams{
			Name:         in.Salon.ManagerName,
			Username:     in.ManagerUsername,
			Role:         domain.RoleManager,
			PasswordHash: hash,
			SalonIDs:     []int64{salon.ID},
		}); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return salon, nil
}

func (s *SalonService) List(ctx context.Context) ([]domain.Salon, error) {
	return s.salons.List(ctx)
}

func (s *SalonService) Get(ctx context.Context, id int64) (*domain.Salon, error) {
	return s.salons.Get(ctx, id)
}

func (s *SalonService) Update(ctx context.Context, salon domain.Salon) (*domain.Salon, error) {
	return s.salons.Update(ctx, salon)
}
