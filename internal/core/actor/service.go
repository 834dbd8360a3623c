// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package actor

import (
	"context"
	"log/slog"

	"github.com/reelhub/reelhub/internal/platform/validate"
	"github.com/reelhub/reelhub/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListActors(context context.Context, filter Filter, limit, offset int) ([]*Actor, int, error) {
	return service.repo.ListActors(context, filter, limit, offset)
}

func (service *Service) GetActor(context context.Context, id string) (*Actor, error) {
	return service.repo.GetActor(context, id)
}

func (service *Service) CreateActor(context context.Context, actor *Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}

	actor.ID = uuid.New()
	if err := service.repo.CreateActor(context, actor); err != nil {
		return err
	}

	service.logger.Info("actor_created", slog.String("actor_id", actor.ID), slog.String("name", actor.Name))
	return nil
}

func (service *Service) UpdateActor(context context.Context, id string, actor *Actor) error {
	actor.ID = id
	if err := validateActor(actor); err != nil {
		return err
	}

	if err := service.repo.UpdateActor(context, actor); err != nil {
		return err
	}

	service.logger.Info("actor_updated", slog.String("actor_id", actor.ID))
	return nil
}

// DeleteActor retires an actor. Filmography references on movies are left
// in place; readers tolerate stale actorids entries.
func (service *Service) DeleteActor(context context.Context, id string) error {
	if err := service.repo.DeleteActor(context, id); err != nil {
		return err
	}

	service.logger.Warn("actor_deleted", slog.String("actor_id", id))
	return nil
}

func validateActor(actor *Actor) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, actor.Name).MaxLen(FieldName, actor.Name, 200).
		Required(FieldCountry, actor.Country).
		Range(FieldAge, actor.Age, 1, 120).
		Custom(FieldOscarsPrizes, actor.OscarsPrizes < 0, "must not be negative").
		Required(FieldGenre, actor.Genre)

	if actor.Image != "" {
		validator.URL(FieldImage, actor.Image)
	}

	return validator.Err()
}
