// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anhnguyenduc/devconnect/internal/platform/database/schema"
	"github.com/anhnguyenduc/devconnect/internal/platform/dberr"
	"github.com/anhnguyenduc/devconnect/pkg/pagination"
	"github.com/anhnguyenduc/devconnect/pkg/slice"
)

// # Profile Repository

// PostgresProfileRepository implements the ProfileRepository interface using pgx.
//
// # Storage Layout
//
// The aggregate spans three tables: users.profile holds scalar fields plus the
// social links as a jsonb column and the skills as a text[] column;
// users.experience and users.education hold the history rows keyed by owner.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new PostgreSQL implementation of the ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

/*
FindByUserID loads the full profile aggregate for one owner.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *Profile: Aggregate with owner snapshot and histories attached
  - error: apperr.NotFound ("Profile not found") when no row exists
*/
func (repository *PostgresProfileRepository) FindByUserID(context context.Context, userID string) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT
			p.userid, p.status, p.skills, p.company, p.website, p.location,
			p.bio, p.githubusername, p.social, p.createdat, p.updatedat,
			a.name, a.avatarurl
		FROM %s p
		JOIN %s a ON a.id = p.userid
		WHERE p.userid = $1`,
		schema.UserProfile.Table, schema.UserAccount.Table)

	profile, err := repository.scanProfile(context, query, userID)
	if err != nil {
		return nil, err
	}

	if err := repository.attachHistories(context, []*Profile{profile}); err != nil {
		return nil, err
	}

	return profile, nil
}

/*
List returns a page of profile aggregates, newest-updated first.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []Profile: Page of aggregates (possibly empty, never nil)
  - error: Database retrieval failures
*/
func (repository *PostgresProfileRepository) List(context context.Context, params pagination.Params) ([]Profile, error) {
	query := fmt.Sprintf(`
		SELECT
			p.userid, p.status, p.skills, p.company, p.website, p.location,
			p.bio, p.githubusername, p.social, p.createdat, p.updatedat,
			a.name, a.avatarurl
		FROM %s p
		JOIN %s a ON a.id = p.userid
		ORDER BY p.updatedat DESC
		LIMIT $1 OFFSET $2`,
		schema.UserProfile.Table, schema.UserAccount.Table)

	rows, err := repository.pool.Query(context, query, params.Limit, params.Offset())
	if err != nil {
		return nil, fmt.Errorf("postgres_profile_repo_list_failed: %w", err)
	}
	defer rows.Close()

	hydrated := []*Profile{}
	for rows.Next() {
		var profile Profile
		var owner Owner
		var socialJSON []byte

		err := rows.Scan(
			&profile.UserID, &profile.Status, &profile.Skills, &profile.Company,
			&profile.Website, &profile.Location, &profile.Bio, &profile.GithubUsername,
			&socialJSON, &profile.CreatedAt, &profile.UpdatedAt,
			&owner.Name, &owner.AvatarURL,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_profile_repo_scan_failed: %w", err)
		}

		if len(socialJSON) > 0 {
			if err := json.Unmarshal(socialJSON, &profile.Social); err != nil {
				return nil, fmt.Errorf("postgres_profile_repo_social_decode_failed: %w", err)
			}
		}
		if profile.Skills == nil {
			profile.Skills = []string{}
		}
		profile.User = &owner

		hydrated = append(hydrated, &profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := repository.attachHistories(context, hydrated); err != nil {
		return nil, err
	}

	return slice.Map(hydrated, func(profile *Profile) Profile { return *profile }), nil
}

/*
Upsert writes the profile row, overwriting every scalar field when the owner
already has one. Histories are untouched.

Parameters:
  - context: context.Context
  - profile: *Profile

Returns:
  - error: Persistence failures
*/
func (repository *PostgresProfileRepository) Upsert(context context.Context, profile *Profile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			userid, status, skills, company, website, location,
			bio, githubusername, social, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (userid) DO UPDATE SET
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			githubusername = EXCLUDED.githubusername,
			social = EXCLUDED.social,
			updatedat = EXCLUDED.updatedat`,
		schema.UserProfile.Table)

	socialJSON, err := json.Marshal(profile.Social)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_social_encode_failed: %w", err)
	}

	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	if profile.Skills == nil {
		profile.Skills = []string{}
	}

	_, err = repository.pool.Exec(context, query,
		profile.UserID,
		profile.Status,
		profile.Skills,
		profile.Company,
		profile.Website,
		profile.Location,
		profile.Bio,
		profile.GithubUsername,
		socialJSON,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_upsert_failed: %w", err)
	}

	return nil
}

/*
AddExperience inserts one work history row for the owner.
*/
func (repository *PostgresProfileRepository) AddExperience(context context.Context, userID string, experience *Experience) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, userid, title, company, location, fromdate, todate,
			iscurrent, description, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schema.UserExperience.Table)

	if experience.CreatedAt.IsZero() {
		experience.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		experience.ID,
		userID,
		experience.Title,
		experience.Company,
		experience.Location,
		experience.From,
		experience.To,
		experience.Current,
		experience.Description,
		experience.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_add_experience_failed: %w", err)
	}

	return nil
}

/*
DeleteExperience removes one work history row, scoped to the owner.
*/
func (repository *PostgresProfileRepository) DeleteExperience(context context.Context, userID, experienceID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND userid = $2`,
		schema.UserExperience.Table)

	if _, err := repository.pool.Exec(context, query, experienceID, userID); err != nil {
		return fmt.Errorf("postgres_profile_repo_delete_experience_failed: %w", err)
	}
	return nil
}

/*
AddEducation inserts one schooling history row for the owner.
*/
func (repository *PostgresProfileRepository) AddEducation(context context.Context, userID string, education *Education) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, userid, school, degree, fieldofstudy, fromdate, todate,
			description, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		schema.UserEducation.Table)

	if education.CreatedAt.IsZero() {
		education.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		education.ID,
		userID,
		education.School,
		education.Degree,
		education.FieldOfStudy,
		education.From,
		education.To,
		education.Description,
		education.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_add_education_failed: %w", err)
	}

	return nil
}

/*
DeleteEducation removes one schooling history row, scoped to the owner.
*/
func (repository *PostgresProfileRepository) DeleteEducation(context context.Context, userID, educationID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 AND userid = $2`,
		schema.UserEducation.Table)

	if _, err := repository.pool.Exec(context, query, educationID, userID); err != nil {
		return fmt.Errorf("postgres_profile_repo_delete_education_failed: %w", err)
	}
	return nil
}

// scanProfile runs a single-row profile query and hydrates the aggregate,
// decoding the jsonb social column and the owner snapshot.
func (repository *PostgresProfileRepository) scanProfile(context context.Context, query string, args ...interface{}) (*Profile, error) {
	var profile Profile
	var owner Owner
	var socialJSON []byte

	err := repository.pool.QueryRow(context, query, args...).Scan(
		&profile.UserID, &profile.Status, &profile.Skills, &profile.Company,
		&profile.Website, &profile.Location, &profile.Bio, &profile.GithubUsername,
		&socialJSON, &profile.CreatedAt, &profile.UpdatedAt,
		&owner.Name, &owner.AvatarURL,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Profile not found", "")
	}

	if len(socialJSON) > 0 {
		if err := json.Unmarshal(socialJSON, &profile.Social); err != nil {
			return nil, fmt.Errorf("postgres_profile_repo_social_decode_failed: %w", err)
		}
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	profile.User = &owner

	return &profile, nil
}

// attachHistories loads experience and education rows for the given profiles
// in two queries and stitches them onto the matching aggregates.
func (repository *PostgresProfileRepository) attachHistories(context context.Context, profiles []*Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	byOwner := make(map[string]*Profile, len(profiles))
	ownerIDs := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		profile.Experience = []Experience{}
		profile.Education = []Education{}
		byOwner[profile.UserID] = profile
		ownerIDs = append(ownerIDs, profile.UserID)
	}

	experienceQuery := fmt.Sprintf(`
		SELECT id, userid, title, company, location, fromdate, todate,
		       iscurrent, description, createdat
		FROM %s
		WHERE userid = ANY($1)
		ORDER BY fromdate DESC`,
		schema.UserExperience.Table)

	rows, err := repository.pool.Query(context, experienceQuery, ownerIDs)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_experience_load_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry Experience
		var ownerID string

		err := rows.Scan(
			&entry.ID, &ownerID, &entry.Title, &entry.Company, &entry.Location,
			&entry.From, &entry.To, &entry.Current, &entry.Description, &entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("postgres_profile_repo_experience_scan_failed: %w", err)
		}

		if profile, ok := byOwner[ownerID]; ok {
			profile.Experience = append(profile.Experience, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	educationQuery := fmt.Sprintf(`
		SELECT id, userid, school, degree, fieldofstudy, fromdate, todate,
		       description, createdat
		FROM %s
		WHERE userid = ANY($1)
		ORDER BY fromdate DESC`,
		schema.UserEducation.Table)

	rows, err = repository.pool.Query(context, educationQuery, ownerIDs)
	if err != nil {
		return fmt.Errorf("postgres_profile_repo_education_load_failed: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry Education
		var ownerID string

		err := rows.Scan(
			&entry.ID, &ownerID, &entry.School, &entry.Degree, &entry.FieldOfStudy,
			&entry.From, &entry.To, &entry.Description, &entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("postgres_profile_repo_education_scan_failed: %w", err)
		}

		if profile, ok := byOwner[ownerID]; ok {
			profile.Education = append(profile.Education, entry)
		}
	}

	return rows.Err()
}
