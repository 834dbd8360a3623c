// Copyright (c) 2026 Reelhub. All rights reserved.
// Author: dev@reelhub.app

/*
Package relation coordinates multi-row reference updates across the catalogue.

Movie cast membership is stored twice (movie.actorids and actor.movieids) and
review authorship three times (the review row, user.reviewids, and
movie.reviewids). This package owns every operation that must touch more than
one of those rows.

# Consistency Model

Writes are issued sequentially without a wrapping transaction, matching the
guarantees of the document store this catalogue was originally built on:

  - A failure before the first write leaves no trace.
  - A failure after an earlier write committed leaves the earlier writes in
    place. The incident is logged and surfaced as a partial-write error; no
    rollback is attempted.
  - Appends are not deduplicated and removed rows never clean up references
    pointing at them. Readers tolerate duplicates and stale IDs.
*/
package relation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reelhub/reelhub/internal/core/review"
	"github.com/reelhub/reelhub/internal/platform/apperr"
	"github.com/reelhub/reelhub/pkg/uuid"
)

// # Store Contracts

// MovieLinkStore maintains the reference arrays on movie rows.
type MovieLinkStore interface {
	PushActorID(context context.Context, movieID, actorID string) error
	PullActorID(context context.Context, movieID, actorID string) error
	PushReviewID(context context.Context, movieID, reviewID string) error
}

// ActorLinkStore maintains the filmography array on actor rows.
type ActorLinkStore interface {
	PushMovieID(context context.Context, actorID, movieID string) error
	PullMovieID(context context.Context, actorID, movieID string) error
}

// ReviewStore persists review rows.
type ReviewStore interface {
	CreateReview(context context.Context, r *review.Review) error
}

// UserLinkStore maintains the authored-review array on user rows.
type UserLinkStore interface {
	PushReviewID(context context.Context, userID, reviewID string) error
}

// # Coordinator

// Coordinator sequences the multi-row writes for cast membership and review
// creation.
type Coordinator struct {
	movies  MovieLinkStore
	actors  ActorLinkStore
	reviews ReviewStore
	users   UserLinkStore
	logger  *slog.Logger
}

// NewCoordinator constructs a [Coordinator] with its store dependencies.
func NewCoordinator(
	movies MovieLinkStore,
	actors ActorLinkStore,
	reviews ReviewStore,
	users UserLinkStore,
	logger *slog.Logger,
) *Coordinator {
	return &Coordinator{
		movies:  movies,
		actors:  actors,
		reviews: reviews,
		users:   users,
		logger:  logger,
	}
}

// # Cast Membership

/*
AttachActor links an actor into a movie's cast on both sides.

Description: Appends actorID to the movie's actorids, then movieID to the
actor's movieids. Re-attaching an existing pair appends duplicate entries on
both sides. If the second write fails after the first committed, the movie
keeps its new entry and the call reports a partial write.

Parameters:
  - context: context.Context
  - movieID: string (UUID)
  - actorID: string (UUID)

Returns:
  - error: Not found, partial write, or execution failures
*/
func (coordinator *Coordinator) AttachActor(context context.Context, movieID, actorID string) error {

	// First write. A failure here leaves both rows untouched.
	if err := coordinator.movies.PushActorID(context, movieID, actorID); err != nil {
		return err
	}

	// Second write. The movie side is already committed.
	if err := coordinator.actors.PushMovieID(context, actorID, movieID); err != nil {
		coordinator.logPartialFailure("attach_actor", err,
			slog.String("movie_id", movieID),
			slog.String("actor_id", actorID),
			slog.String("committed", "movie.actorids"),
		)
		return apperr.PartialWrite(fmt.Errorf("relation_attach_actor_failed: %w", err))
	}

	coordinator.logger.Info("cast_actor_attached",
		slog.String("movie_id", movieID),
		slog.String("actor_id", actorID),
	)
	return nil
}

/*
DetachActor removes an actor from a movie's cast on both sides.

Description: Removes every occurrence of actorID from the movie's actorids,
then every occurrence of movieID from the actor's movieids. Detaching a pair
that was never attached is a no-op on both arrays and succeeds.

Parameters:
  - context: context.Context
  - movieID: string (UUID)
  - actorID: string (UUID)

Returns:
  - error: Not found, partial write, or execution failures
*/
func (coordinator *Coordinator) DetachActor(context context.Context, movieID, actorID string) error {

	if err := coordinator.movies.PullActorID(context, movieID, actorID); err != nil {
		return err
	}

	if err := coordinator.actors.PullMovieID(context, actorID, movieID); err != nil {
		coordinator.logPartialFailure("detach_actor", err,
			slog.String("movie_id", movieID),
			slog.String("actor_id", actorID),
			slog.String("committed", "movie.actorids"),
		)
		return apperr.PartialWrite(fmt.Errorf("relation_detach_actor_failed: %w", err))
	}

	coordinator.logger.Info("cast_actor_detached",
		slog.String("movie_id", movieID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// # Review Creation

// CreateReviewInput holds the data for a new review and its references.
type CreateReviewInput struct {
	Title   string
	Text    string
	Rating  int
	UserID  string
	MovieID string
}

/*
CreateReview persists a review and fans its ID out to the author and movie.

Description: Three sequential writes in fixed order: the review row, the
author's reviewids, the movie's reviewids. A validation failure or a failed
first write leaves no trace. Once the review row is committed it is never
rolled back; later failures leave the already-written references in place
and report a partial write while the review itself survives.

Parameters:
  - context: context.Context
  - input: CreateReviewInput

Returns:
  - *review.Review: The persisted review (also on partial-write errors)
  - error: Validation, not found, partial write, or execution failures
*/
func (coordinator *Coordinator) CreateReview(context context.Context, input CreateReviewInput) (*review.Review, error) {

	if err := review.ValidateContent(input.Title, input.Text, input.Rating); err != nil {
		return nil, err
	}

	entry := &review.Review{
		ID:      uuid.New(),
		Title:   input.Title,
		Text:    input.Text,
		Rating:  input.Rating,
		UserID:  input.UserID,
		MovieID: input.MovieID,
	}

	// ── 1. Review row ──
	if err := coordinator.reviews.CreateReview(context, entry); err != nil {
		return nil, err
	}

	// ── 2. Author reference ──
	if err := coordinator.users.PushReviewID(context, input.UserID, entry.ID); err != nil {
		coordinator.logPartialFailure("create_review", err,
			slog.String("review_id", entry.ID),
			slog.String("user_id", input.UserID),
			slog.String("committed", "social.review"),
		)
		return entry, apperr.PartialWrite(fmt.Errorf("relation_review_user_link_failed: %w", err))
	}

	// ── 3. Movie reference ──
	if err := coordinator.movies.PushReviewID(context, input.MovieID, entry.ID); err != nil {
		coordinator.logPartialFailure("create_review", err,
			slog.String("review_id", entry.ID),
			slog.String("movie_id", input.MovieID),
			slog.String("committed", "social.review,users.account.reviewids"),
		)
		return entry, apperr.PartialWrite(fmt.Errorf("relation_review_movie_link_failed: %w", err))
	}

	coordinator.logger.Info("review_created",
		slog.String("review_id", entry.ID),
		slog.String("movie_id", input.MovieID),
		slog.String("user_id", input.UserID),
	)
	return entry, nil
}

// logPartialFailure records a multi-write operation that stopped after one
// or more writes had already committed.
func (coordinator *Coordinator) logPartialFailure(operation string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	}, attrs...)
	coordinator.logger.Error("integrity_partial_failure", args...)
}
