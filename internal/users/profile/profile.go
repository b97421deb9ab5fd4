// Copyright (c) 2026 DevConnect. All rights reserved.
// Author: anh.nguyenduc.vn@gmail.com

/*
Package profile implements professional profiles for user accounts.

A profile belongs to exactly one account and aggregates career metadata:
status, skills, social links, and ordered experience and education histories.
The package also exposes the public GitHub repository lookup tied to a
profile's github username.
*/
package profile

import "time"

// # Entities

// Social holds optional links to external social platforms.
//
// All fields are nullable; absent links are omitted from JSON output.
type Social struct {
	Youtube   *string `json:"youtube,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	Linkedin  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Owner is the denormalized account snapshot attached to listed profiles.
type Owner struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
}

// Experience is a single work history entry.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    *string    `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a single schooling history entry.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"field_of_study"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Description  *string    `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Profile is the aggregate root for one account's professional profile.
//
// Skills is always non-nil in API responses; Experience and Education are
// returned newest-first.
type Profile struct {
	UserID         string       `json:"user_id"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Company        *string      `json:"company,omitempty"`
	Website        *string      `json:"website,omitempty"`
	Location       *string      `json:"location,omitempty"`
	Bio            *string      `json:"bio,omitempty"`
	GithubUsername *string      `json:"github_username,omitempty"`
	Social         Social       `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	User           *Owner       `json:"user,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// # Field Names

// Field name constants shared by validation and JSON payloads.
const (
	FieldStatus       = "status"
	FieldSkills       = "skills"
	FieldTitle        = "title"
	FieldCompany      = "company"
	FieldFrom         = "from"
	FieldSchool       = "school"
	FieldDegree       = "degree"
	FieldFieldOfStudy = "fieldofstudy"
)
