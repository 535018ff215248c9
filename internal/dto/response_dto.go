package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	CMS     bool   `json:"cms_configured"`
}

type LocaleDTO struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProviderCode string `json:"provider_code"`
	Path         string `json:"path"`
	Current      bool   `json:"current"`
}

// LocalesResponse backs a language switcher. Path is the page path without a locale prefix.
type LocalesResponse struct {
	Current string      `json:"current"`
	Path    string      `json:"path"`
	Locales []LocaleDTO `json:"locales"`
}
