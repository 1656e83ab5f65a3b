package v1

import "time"

type TriggerReplenishRequest struct {
	TemplateId   int64  `json:"template_id" binding:"required" example:"1"`
	CredentialId int64  `json:"credential_id" example:"0"` // optional explicit credential
	Group        string `json:"group" example:"personal"`  // selection group when no credential given
	Trigger      string `json:"trigger" example:"manual"`  // manual | instance_down | credential_invalid
	InstanceId   string `json:"instance_id"`               // originating instance, if any
}

type ReplenishInstance struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	IPv4   string `json:"ipv4"`
	IPv6   string `json:"ipv6"`
	Status string `json:"status"`
}

type TriggerReplenishData struct {
	LogId    int64             `json:"log_id"`
	Instance ReplenishInstance `json:"instance"`
	// RootPassword is empty when the provider generates its own password;
	// PasswordApplied tells the caller which case they got.
	RootPassword    string `json:"root_password"`
	PasswordApplied bool   `json:"password_applied"`
}
type TriggerReplenishResponse struct {
	Response
	Data TriggerReplenishData
}

type UpdateReplenishConfigRequest struct {
	Enabled         *bool   `json:"enabled"`
	MonitorMode     *string `json:"monitor_mode"` // instances | credentials
	MonitorTargets  *string `json:"monitor_targets"`
	InstanceMapping *string `json:"instance_mapping"`
	TemplateId      *int64  `json:"template_id"`
	Group           *string `json:"group"`
	CheckInterval   *int    `json:"check_interval"` // seconds, >= 60
	NotifyEnabled   *bool   `json:"notify_enabled"`
	NotifyWebhook   *string `json:"notify_webhook"` // per-user override, empty uses the global webhook
}

type ReplenishConfigData struct {
	Enabled         bool   `json:"enabled"`
	MonitorMode     string `json:"monitor_mode"`
	MonitorTargets  string `json:"monitor_targets"`
	InstanceMapping string `json:"instance_mapping"`
	TemplateId      int64  `json:"template_id"`
	Group           string `json:"group"`
	CheckInterval   int    `json:"check_interval"`
	NotifyEnabled   bool   `json:"notify_enabled"`
	NotifyWebhook   string `json:"notify_webhook"`
}
type GetReplenishConfigResponse struct {
	Response
	Data ReplenishConfigData
}

type CreateReplenishTaskRequest struct {
	TaskName        string `json:"task_name" binding:"required,min=1,max=100"`
	CredentialIds   string `json:"credential_ids"`
	InstanceIds     string `json:"instance_ids"`
	InstanceMapping string `json:"instance_mapping"`
	TemplateId      int64  `json:"template_id"`
	CheckInterval   int    `json:"check_interval"`
	Enabled         bool   `json:"enabled"`
}

type UpdateReplenishTaskRequest struct {
	TaskName        *string `json:"task_name"`
	CredentialIds   *string `json:"credential_ids"`
	InstanceIds     *string `json:"instance_ids"`
	InstanceMapping *string `json:"instance_mapping"`
	TemplateId      *int64  `json:"template_id"`
	CheckInterval   *int    `json:"check_interval"`
	Enabled         *bool   `json:"enabled"`
}

type ReplenishTaskItem struct {
	Id              int64  `json:"id"`
	TaskName        string `json:"task_name"`
	CredentialIds   string `json:"credential_ids"`
	InstanceIds     string `json:"instance_ids"`
	InstanceMapping string `json:"instance_mapping"`
	TemplateId      int64  `json:"template_id"`
	CheckInterval   int    `json:"check_interval"`
	Enabled         bool   `json:"enabled"`
}
type ListReplenishTaskResponseData struct {
	Total int64               `json:"total"`
	List  []ReplenishTaskItem `json:"list"`
}
type ListReplenishTaskResponse struct {
	Response
	Data ListReplenishTaskResponseData
}

type ReplenishLogItem struct {
	Id           int64     `json:"id"`
	Trigger      string    `json:"trigger"`
	InstanceId   string    `json:"instance_id"`
	CredentialId int64     `json:"credential_id"`
	NewId        string    `json:"new_instance_id"`
	NewName      string    `json:"new_instance_name"`
	NewIPv4      string    `json:"new_ipv4"`
	NewIPv6      string    `json:"new_ipv6"`
	Status       string    `json:"status"`
	ErrorMessage string    `json:"error_message"`
	CreateTime   time.Time `json:"create_time"`
}
type ListReplenishLogRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}
type ListReplenishLogResponseData struct {
	Total int64              `json:"total"`
	List  []ReplenishLogItem `json:"list"`
}
type ListReplenishLogResponse struct {
	Response
	Data ListReplenishLogResponseData
}
