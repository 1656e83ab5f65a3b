package v1

import "time"

type CreateCredentialRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"my vultr key"`
	Provider string `json:"provider" binding:"required" example:"vultr"`
	Secret   string `json:"secret" binding:"required" example:"VULTRAPIKEY"`
	Group    string `json:"group" example:"personal"` // personal | rental, defaults to personal
}

type CredentialItem struct {
	Id            int64      `json:"id"`
	Name          string     `json:"name"`
	Provider      string     `json:"provider"`
	Group         string     `json:"group"`
	HealthStatus  string     `json:"health_status"`
	LastCheckedAt *time.Time `json:"last_checked_at"`
	LastError     string     `json:"last_error"`
}

type ListCredentialResponseData struct {
	Total int64            `json:"total"`
	List  []CredentialItem `json:"list"`
}
type ListCredentialResponse struct {
	Response
	Data ListCredentialResponseData
}
