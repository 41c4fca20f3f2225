package models

// Menu locations
const (
	MenuNavbar  = "navbar"
	MenuSidebar = "sidebar"
	MenuFooter  = "footer"
)

// DefaultSiteName is used when the settings row is first created
const DefaultSiteName = "MyLink.asia"

// MenuItem is a navigation entry rendered by the frontend
type MenuItem struct {
	ID         int64  `json:"id" db:"id"`
	Location   string `json:"location" db:"location"`
	Title      string `json:"title" db:"title"`
	Path       string `json:"path" db:"path"`
	Icon       string `json:"icon" db:"icon"`
	Order      int    `json:"order" db:"sort_order"`
	IsActive   bool   `json:"is_active" db:"is_active"`
	IsExternal bool   `json:"is_external" db:"is_external"`
}

// MenuItemInput is the writable part of a menu item
type MenuItemInput struct {
	Location   string `json:"location" validate:"omitempty,oneof=navbar sidebar footer"`
	Title      string `json:"title" validate:"required,max=100"`
	Path       string `json:"path" validate:"required,max=200"`
	Icon       string `json:"icon" validate:"max=50"`
	Order      int    `json:"order" validate:"min=0"`
	IsActive   *bool  `json:"is_active"`
	IsExternal bool   `json:"is_external"`
}

// ToMenuItem applies defaults and converts the input into a menu item
func (in MenuItemInput) ToMenuItem() MenuItem {
	item := MenuItem{
		Location:   in.Location,
		Title:      in.Title,
		Path:       in.Path,
		Icon:       in.Icon,
		Order:      in.Order,
		IsActive:   true,
		IsExternal: in.IsExternal,
	}
	if item.Location == "" {
		item.Location = MenuNavbar
	}
	if in.IsActive != nil {
		item.IsActive = *in.IsActive
	}
	return item
}

// SiteSettings is the single row of site-wide settings
type SiteSettings struct {
	ID              int    `json:"-" db:"id"`
	SiteName        string `json:"site_name" db:"site_name"`
	SiteDescription string `json:"site_description" db:"site_description"`
	ContactEmail    string `json:"contact_email" db:"contact_email"`
	ContactTelegram string `json:"contact_telegram" db:"contact_telegram"`
	AnalyticsCode   string `json:"analytics_code" db:"analytics_code"`
	MaintenanceMode bool   `json:"maintenance_mode" db:"maintenance_mode"`
}

// SiteSettingsInput is the writable part of the site settings
type SiteSettingsInput struct {
	SiteName        string `json:"site_name" validate:"required,max=100"`
	SiteDescription string `json:"site_description"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	ContactTelegram string `json:"contact_telegram" validate:"max=100"`
	AnalyticsCode   string `json:"analytics_code"`
	MaintenanceMode bool   `json:"maintenance_mode"`
}
