package models

// BrandingConfig holds the tenant-customisable look of the dashboard.
// The JSON names match what the browser stored under "website-config".
type BrandingConfig struct {
	PrimaryColor   string `json:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"required,hexcolor"`
	CompanyLogo    string `json:"companyLogo"`
	LoadingIcon    string `json:"loadingIcon"`
}

// DefaultBranding is used when no branding has been saved or the saved copy is unreadable.
func DefaultBranding() BrandingConfig {
	return BrandingConfig{
		PrimaryColor:   "#1e40af",
		SecondaryColor: "#f59e0b",
		CompanyLogo:    "/logo.svg",
		LoadingIcon:    "/loading.svg",
	}
}
