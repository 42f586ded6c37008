package api

// Branding is the tenant look of the dashboard.
type Branding struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	CompanyLogo    string `json:"companyLogo"`
	LoadingIcon    string `json:"loadingIcon"`
}

type GetBrandingRequest struct{}

type GetBrandingResponse struct {
	Branding Branding `json:"branding"`
}

type UpdateBrandingRequest struct {
	Branding Branding `json:"branding"`
}

type UpdateBrandingResponse struct {
	Branding Branding `json:"branding"`
}

type ResetBrandingRequest struct{}

type ResetBrandingResponse struct {
	Branding Branding `json:"branding"`
}
