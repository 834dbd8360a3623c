// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

package movie

import "context"

// # Movie Data Access

// Repository defines the data access contract for the movie domain.
type Repository interface {

	/*
		List returns a filtered, paginated slice of movies and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Criteria for title search and genre)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Movie: Slice of matching titles
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Movie, int, error)

	/*
		FindByID returns the movie with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Movie: The hydrated domain entity
		  - error: ErrNotFound if missing or retired
	*/
	FindByID(context context.Context, id string) (*Movie, error)

	/*
		FindBySlug returns the movie matching the unique URL identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Movie: The hydrated domain entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Movie, error)

	/*
		Create persists a new movie to the store.

		Parameters:
		  - context: context.Context
		  - movie: *Movie (Metadata and initial state)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, movie *Movie) error

	/*
		Update persists changes to an existing movie's mutable fields.

		Parameters:
		  - context: context.Context
		  - movie: *Movie (Target ID and modified attributes)

		Returns:
		  - error: Storage or validation failures
	*/
	Update(context context.Context, movie *Movie) error

	/*
		SoftDelete retires a movie without physical row removal. Reviews of
		the movie and actor filmographies referencing it are left untouched.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: State update failures
	*/
	SoftDelete(context context.Context, id string) error

	/*
		PushActorID appends an actor reference to the movie's actorids array.
		Appends are not deduplicated.

		Parameters:
		  - context: context.Context
		  - movieID: string
		  - actorID: string

		Returns:
		  - error: ErrNotFound if the movie is missing, or execution failures
	*/
	PushActorID(context context.Context, movieID, actorID string) error

	/*
		PullActorID removes every occurrence of an actor reference from the
		movie's actorids array.

		Parameters:
		  - context: context.Context
		  - movieID: string
		  - actorID: string

		Returns:
		  - error: ErrNotFound if the movie is missing, or execution failures
	*/
	PullActorID(context context.Context, movieID, actorID string) error

	/*
		PushReviewID appends a review reference to the movie's reviewids array.

		Parameters:
		  - context: context.Context
		  - movieID: string
		  - reviewID: string

		Returns:
		  - error: ErrNotFound if the movie is missing, or execution failures
	*/
	PushReviewID(context context.Context, movieID, reviewID string) error
}
