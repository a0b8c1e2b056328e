package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateAuthorRequest - POST /authors
type CreateAuthorRequest struct {
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	FullName    string      `json:"full_name"`
	Bio         *string     `json:"bio,omitempty"`
	BirthDate   *time.Time  `json:"birth_date,omitempty"`
	Nationality *string     `json:"nationality,omitempty"`
	Website     *string     `json:"website,omitempty"`
	SocialLinks SocialLinks `json:"social_links,omitempty"`
	PhotoURL    *string     `json:"photo_url,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil, is.URL.Error("website must be a valid URL")),
		),
		validation.Field(&r.SocialLinks, validation.By(validSocialLinks)),
	)
}

// UpdateAuthorRequest - PUT /authors/:id
// Merge-patch: only non-nil fields are applied, absent fields keep their
// current values.
type UpdateAuthorRequest struct {
	FirstName   *string     `json:"first_name,omitempty"`
	LastName    *string     `json:"last_name,omitempty"`
	FullName    *string     `json:"full_name,omitempty"`
	Bio         *string     `json:"bio,omitempty"`
	BirthDate   *time.Time  `json:"birth_date,omitempty"`
	Nationality *string     `json:"nationality,omitempty"`
	Website     *string     `json:"website,omitempty"`
	SocialLinks SocialLinks `json:"social_links,omitempty"`
	PhotoURL    *string     `json:"photo_url,omitempty"`
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.When(r.FirstName != nil, validation.Required.Error("first name cannot be empty")),
		),
		validation.Field(&r.LastName,
			validation.When(r.LastName != nil, validation.Required.Error("last name cannot be empty")),
		),
		validation.Field(&r.FullName,
			validation.When(r.FullName != nil, validation.Required.Error("full name cannot be empty")),
		),
		validation.Field(&r.Website,
			validation.When(r.Website != nil, is.URL.Error("website must be a valid URL")),
		),
		validation.Field(&r.SocialLinks, validation.By(validSocialLinks)),
	)
}

func validSocialLinks(value interface{}) error {
	links, _ := value.(SocialLinks)
	for platform := range links {
		ok := false
		for _, allowed := range SocialPlatforms {
			if platform == allowed {
				ok = true
				break
			}
		}
		if !ok {
			return validation.NewError("validation_social_platform", "unsupported social platform: "+platform)
		}
	}
	return nil
}

// ToEntity converts the create request to a new Author entity. ID and
// timestamps are assigned by the store on insert.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		FullName:    r.FullName,
		Bio:         r.Bio,
		BirthDate:   r.BirthDate,
		Nationality: r.Nationality,
		Website:     r.Website,
		SocialLinks: r.SocialLinks,
		PhotoURL:    r.PhotoURL,
	}
}

// ApplyToEntity applies the non-nil patch fields to an existing Author.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.FirstName != nil {
		a.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		a.LastName = *r.LastName
	}
	if r.FullName != nil {
		a.FullName = *r.FullName
	}
	if r.Bio != nil {
		a.Bio = r.Bio
	}
	if r.BirthDate != nil {
		a.BirthDate = r.BirthDate
	}
	if r.Nationality != nil {
		a.Nationality = r.Nationality
	}
	if r.Website != nil {
		a.Website = r.Website
	}
	if r.SocialLinks != nil {
		a.SocialLinks = r.SocialLinks
	}
	if r.PhotoURL != nil {
		a.PhotoURL = r.PhotoURL
	}
}
