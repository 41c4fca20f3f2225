package models

import (
	"time"

	"github.com/google/uuid"
)

// Link icon types
const (
	IconTelegram       = "telegram"
	IconInstagram      = "instagram"
	IconFacebook       = "facebook"
	IconX              = "x"
	IconWhatsApp       = "whatsapp"
	IconTelegramNumber = "telegram_number"
	IconPhone          = "phone"
	IconLinkedIn       = "linkedin"
	IconWebsite        = "website"
	IconOther          = "other"
)

// Business is a public profile page owned by a user
type Business struct {
	ID          int64     `json:"id" db:"id"`
	OwnerID     uuid.UUID `json:"-" db:"owner_id"`
	Path        string    `json:"path" db:"path"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Logo        *string   `json:"logo" db:"logo"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	Links       []Link    `json:"links" db:"-"`
}

// Link is a single entry on a business page
type Link struct {
	ID         int64  `json:"id" db:"id"`
	BusinessID int64  `json:"-" db:"business_id"`
	Title      string `json:"title" db:"title"`
	URL        string `json:"url" db:"url"`
	IconType   string `json:"icon_type" db:"icon_type"`
	Order      int    `json:"order" db:"sort_order"`
}

// BusinessInput is the writable part of a business.
// Nil fields are left untouched on partial updates.
// A non-nil Links slice, even an empty one, replaces every existing link.
type BusinessInput struct {
	Path        *string     `json:"path" validate:"omitempty,max=50,slug"`
	Name        *string     `json:"name" validate:"omitempty,max=100"`
	Description *string     `json:"description"`
	Logo        *string     `json:"logo" validate:"omitempty,max=255"`
	Links       []LinkInput `json:"links" validate:"omitempty,dive"`
}

// RequiredErrors returns field errors for path and name.
// A full write must carry both; a partial write may omit them but not blank them.
func (in BusinessInput) RequiredErrors(partial bool) map[string][]string {
	errs := map[string][]string{}
	check := func(field string, v *string) {
		switch {
		case v == nil && !partial:
			errs[field] = []string{"This field is required."}
		case v != nil && *v == "":
			errs[field] = []string{"This field may not be blank."}
		}
	}
	check("path", in.Path)
	check("name", in.Name)
	return errs
}

// LinkInput is the writable part of a link
type LinkInput struct {
	Title    string `json:"title" validate:"required,max=100"`
	URL      string `json:"url" validate:"required,max=500"`
	IconType string `json:"icon_type" validate:"omitempty,oneof=telegram instagram facebook x whatsapp telegram_number phone linkedin website other"`
	Order    int    `json:"order" validate:"min=0"`
}

// ToLink converts the input into a link for the given business
func (in LinkInput) ToLink(businessID int64) Link {
	iconType := in.IconType
	if iconType == "" {
		iconType = IconWebsite
	}
	return Link{
		BusinessID: businessID,
		Title:      in.Title,
		URL:        in.URL,
		IconType:   iconType,
		Order:      in.Order,
	}
}

// BusinessEvent is published when a business changes
type BusinessEvent struct {
	BusinessID int64     `json:"business_id"`
	OwnerID    string    `json:"owner_id"`
	Path       string    `json:"path"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
