package v1

import "time"

type CreateTemplateRequest struct {
	TemplateName string `json:"template_name" binding:"required,min=1,max=100" example:"sgp-base"`
	Provider     string `json:"provider" binding:"required" example:"vultr"`
	Region       string `json:"region" binding:"required" example:"sgp"`
	Plan         string `json:"plan" binding:"required" example:"vc2-1c-1gb"`
	Image        string `json:"image" binding:"required" example:"2136"`
	DiskGB       int    `json:"disk_gb" example:"25"`
	EnableIPv6   bool   `json:"enable_ipv6"`
	SeedScript   string `json:"seed_script"`
	RootPassword string `json:"root_password"` // optional fixed password; generated when empty
	Description  string `json:"description"`
}

type UpdateTemplateRequest struct {
	TemplateName *string `json:"template_name"`
	Region       *string `json:"region"`
	Plan         *string `json:"plan"`
	Image        *string `json:"image"`
	DiskGB       *int    `json:"disk_gb"`
	EnableIPv6   *bool   `json:"enable_ipv6"`
	SeedScript   *string `json:"seed_script"`
	RootPassword *string `json:"root_password"`
	Description  *string `json:"description"`
}

type TemplateItem struct {
	Id           int64  `json:"id"`
	TemplateName string `json:"template_name"`
	Provider     string `json:"provider"`
	Region       string `json:"region"`
	Plan         string `json:"plan"`
	Image        string `json:"image"`
	IsDefault    bool   `json:"is_default"`
	Description  string `json:"description"`
}

type TemplateDetail struct {
	TemplateItem
	DiskGB      int       `json:"disk_gb"`
	EnableIPv6  bool      `json:"enable_ipv6"`
	SeedScript  string    `json:"seed_script"`
	HasPassword bool      `json:"has_password"`
	CreateTime  time.Time `json:"create_time"`
	UpdateTime  time.Time `json:"update_time"`
}

type ListTemplateRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Provider string `form:"provider"`
}

type ListTemplateResponseData struct {
	Total int64          `json:"total"`
	List  []TemplateItem `json:"list"`
}
type ListTemplateResponse struct {
	Response
	Data ListTemplateResponseData
}
type GetTemplateResponse struct {
	Response
	Data TemplateDetail
}
