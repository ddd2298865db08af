package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/trm"
	"github.com/go-playground/validator/v10"
)

type RosterRepo interface {
	SaveDeliveryPerson(ctx context.Context, p entities.DeliveryPerson) error
	DeliveryPersonExists(ctx context.Context, restaurant, name string) (bool, error)
	ListDeliveryPeople(ctx context.Context, restaurant string) ([]entities.DeliveryPerson, error)
	DeleteDeliveryPerson(ctx context.Context, restaurant, name string) error
}

type rosterService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      RosterRepo
	validate  *validator.Validate
}

func NewRosterService(logger *slog.Logger, txManager trm.Manager, repo RosterRepo) *rosterService {
	return &rosterService{
		logger:    logger.With(slog.String("service", "roster")),
		txManager: txManager,
		repo:      repo,
		validate:  validator.New(),
	}
}

// Add registers a delivery person. Names are unique per restaurant.
func (s *rosterService) Add(ctx context.Context, p entities.DeliveryPerson) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	if err := s.validate.Struct(p); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.repo.DeliveryPersonExists(ctx, p.Restaurant, p.Name)
		if err != nil {
			return err
		}
		if exists {
			return entities.ErrDeliveryPersonExists
		}
		if err := s.repo.SaveDeliveryPerson(ctx, p); err != nil {
			return fmt.Errorf("failed to add delivery person: %w", err)
		}

		s.logger.Info("delivery person added", slog.String("restaurant", p.Restaurant), slog.String("name", p.Name))
		return nil
	})
}

func (s *rosterService) List(ctx context.Context, restaurant string) ([]entities.DeliveryPerson, error) {
	return s.repo.ListDeliveryPeople(ctx, restaurant)
}

func (s *rosterService) Delete(ctx context.Context, restaurant, name string) error {
	if err := s.repo.DeleteDeliveryPerson(ctx, restaurant, strings.TrimSpace(name)); err != nil {
		return err
	}
	s.logger.Info("delivery person deleted", slog.String("restaurant", restaurant), slog.String("name", name))
	return nil
}
