package model

import "time"

// ReplenishLogEntry is the immutable audit record of one orchestration
// attempt. Created in pending status before any external call, then mutated
// exactly once to success or failed.
type ReplenishLogEntry struct {
	Id     int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId string `json:"user_id" gorm:"column:user_id;size:64;not null;index"`

	Trigger      string `json:"trigger" gorm:"column:trigger_type;size:50;not null"`
	InstanceId   string `json:"instance_id" gorm:"column:instance_id;size:100"`
	CredentialId int64  `json:"credential_id" gorm:"column:credential_id;default:0;index"`
	TemplateId   int64  `json:"template_id" gorm:"column:template_id;not null"`

	NewInstanceId   string `json:"new_instance_id" gorm:"column:new_instance_id;size:100"`
	NewInstanceName string `json:"new_instance_name" gorm:"column:new_instance_name;size:100"`
	NewIPv4         string `json:"new_ipv4" gorm:"column:new_ipv4;size:50"`
	NewIPv6         string `json:"new_ipv6" gorm:"column:new_ipv6;size:100"`
	RootPassword    string `json:"-" gorm:"column:root_password;size:200"`

	Status       string `json:"status" gorm:"column:status;size:50;not null;default:'pending';index"`
	ErrorMessage string `json:"error_message" gorm:"column:error_message;type:text"`
	Details      string `json:"details" gorm:"column:details;type:text"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ReplenishLogEntry) TableName() string {
	return "replenish_log"
}

// ReplenishLogEntry status values.
const (
	ReplenishStatusPending = "pending"
	ReplenishStatusSuccess = "success"
	ReplenishStatusFailed  = "failed"
)

// Trigger type values.
const (
	TriggerManual            = "manual"
	TriggerInstanceDown      = "instance_down"
	TriggerCredentialInvalid = "credential_invalid"
)
