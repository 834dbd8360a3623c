// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package actor

import "context"

type Repository interface {
	ListActors(context context.Context, f Filter, limit, offset int) ([]*Actor, int, error)
	GetActor(context context.Context, id string) (*Actor, error)
	CreateActor(context context.Context, a *Actor) error
	UpdateActor(context context.Context, a *Actor) error
	DeleteActor(context context.Context, id string) error

	// Link maintenance used by the relation coordinator. PushMovieID appends
	// without deduplication; PullMovieID removes every occurrence.
	PushMovieID(context context.Context, actorID, movieID string) error
	PullMovieID(context context.Context, actorID, movieID string) error
}
