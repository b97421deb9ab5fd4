package schema

// UserProfileTable represents the 'users.profile' table
type UserProfileTable struct {
	Table          string
	UserID         string
	Status         string
	Skills         string
	Company        string
	Website        string
	Location       string
	Bio            string
	GithubUsername string
	Social         string
	CreatedAt      string
	UpdatedAt      string
}

// UserProfile is the schema definition for users.profile
var UserProfile = UserProfileTable{
	Table:          "users.profile",
	UserID:         "userid",
	Status:         "status",
	Skills:         "skills",
	Company:        "company",
	Website:        "website",
	Location:       "location",
	Bio:            "bio",
	GithubUsername: "githubusername",
	Social:         "social",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// UserExperienceTable represents the 'users.experience' table
type UserExperienceTable struct {
	Table       string
	ID          string
	UserID      string
	Title       string
	Company     string
	Location    string
	FromDate    string
	ToDate      string
	IsCurrent   string
	Description string
	CreatedAt   string
}

// UserExperience is the schema definition for users.experience
var UserExperience = UserExperienceTable{
	Table:       "users.experience",
	ID:          "id",
	UserID:      "userid",
	Title:       "title",
	Company:     "company",
	Location:    "location",
	FromDate:    "fromdate",
	ToDate:      "todate",
	IsCurrent:   "iscurrent",
	Description: "description",
	CreatedAt:   "createdat",
}

// UserEducationTable represents the 'users.education' table
type UserEducationTable struct {
	Table        string
	ID           string
	UserID       string
	School       string
	Degree       string
	FieldOfStudy string
	FromDate     string
	ToDate       string
	Description  string
	CreatedAt    string
}

// UserEducation is the schema definition for users.education
var UserEducation = UserEducationTable{
	Table:        "users.education",
	ID:           "id",
	UserID:       "userid",
	School:       "school",
	Degree:       "degree",
	FieldOfStudy: "fieldofstudy",
	FromDate:     "fromdate",
	ToDate:       "todate",
	Description:  "description",
	CreatedAt:    "createdat",
}
