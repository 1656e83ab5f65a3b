package model

import "time"

// ReplenishConfig is the per-user singleton controlling automatic
// monitoring. Absence of a row means disabled defaults.
type ReplenishConfig struct {
	Id     int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId string `json:"user_id" gorm:"column:user_id;size:64;uniqueIndex;not null"`

	Enabled     bool   `json:"enabled" gorm:"column:enabled;default:false"`
	MonitorMode string `json:"monitor_mode" gorm:"column:monitor_mode;size:50;default:'instances'"`

	// MonitorTargets is a comma-separated set of instance or credential
	// ids, depending on MonitorMode.
	MonitorTargets  string `json:"monitor_targets" gorm:"column:monitor_targets;type:text"`
	InstanceMapping string `json:"instance_mapping" gorm:"column:instance_mapping;type:text"`

	TemplateId    int64  `json:"template_id" gorm:"column:template_id;default:0"`
	Group         string `json:"group" gorm:"column:cred_group;size:50;default:'personal'"`
	CheckInterval int    `json:"check_interval" gorm:"column:check_interval;default:300"`
	NotifyEnabled bool   `json:"notify_enabled" gorm:"column:notify_enabled;default:false"`

	// NotifyWebhook overrides the global webhook for this user's personal
	// notifications. Empty means fall back to the configured default.
	NotifyWebhook string `json:"notify_webhook" gorm:"column:notify_webhook;size:500"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ReplenishConfig) TableName() string {
	return "replenish_config"
}

// MonitorMode values.
const (
	MonitorModeInstances   = "instances"
	MonitorModeCredentials = "credentials"
)

// MinCheckInterval is the enforced floor for sweep frequency, in seconds.
const MinCheckInterval = 60
