// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package profile

import (
	"context"

	"github.com/anhnguyenduc/devconnect/pkg/pagination"
)

// # Profile Data Access

// ProfileRepository defines the data access contract for profiles and their
// experience/education histories.
type ProfileRepository interface {

	/*
		FindByUserID returns the profile owned by the given account, with its
		owner snapshot and full experience/education histories attached.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *Profile: Hydrated aggregate
		  - error: apperr.NotFound when no profile row exists
	*/
	FindByUserID(context context.Context, userID string) (*Profile, error)

	/*
		List returns a page of profiles with owner snapshots and histories,
		newest-updated first.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []Profile: Page of hydrated aggregates (possibly empty)
		  - error: Database retrieval failures
	*/
	List(context context.Context, params pagination.Params) ([]Profile, error)

	/*
		Upsert creates the profile row for its owner, or overwrites the
		existing row's fields when one is already present.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Persistence failures
	*/
	Upsert(context context.Context, profile *Profile) error

	/*
		AddExperience appends a work history entry to the owner's profile.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - experience: *Experience

		Returns:
		  - error: Persistence failures
	*/
	AddExperience(context context.Context, userID string, experience *Experience) error

	/*
		DeleteExperience removes the entry with the given id, scoped to the
		owner so one user cannot remove another's history.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - experienceID: string

		Returns:
		  - error: Persistence failures (no error when the id does not exist)
	*/
	DeleteExperience(context context.Context, userID, experienceID string) error

	/*
		AddEducation appends a schooling history entry to the owner's profile.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - education: *Education

		Returns:
		  - error: Persistence failures
	*/
	AddEducation(context context.Context, userID string, education *Education) error

	/*
		DeleteEducation removes the entry with the given id, scoped to the owner.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - educationID: string

		Returns:
		  - error: Persistence failures (no error when the id does not exist)
	*/
	DeleteEducation(context context.Context, userID, educationID string) error
}
