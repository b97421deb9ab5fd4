// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package sec

import "github.com/anhnguyenduc/devconnect/internal/platform/apperr"

// # Ownership Policy

// Authorize decides whether an actor may mutate a resource owned by ownerID.
//
// It is a pure, stateless decision function: allow iff the actor IS the
// owner. Callers must confirm the resource exists before invoking this (a
// missing resource is a 404, never conflated with an authorization failure),
// and must invoke it strictly before any write.
func Authorize(actorID, ownerID string) error {
	if actorID == ownerID {
		return nil
	}
	return apperr.Unauthorized("User not Authorized")
}
