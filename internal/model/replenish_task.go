package model

import "time"

// ReplenishTask generalizes ReplenishConfig to multiple concurrent watch
// rules per user, each independently schedulable.
type ReplenishTask struct {
	Id       int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId   string `json:"user_id" gorm:"column:user_id;size:64;not null;uniqueIndex:uk_user_task"`
	TaskName string `json:"task_name" gorm:"column:task_name;size:100;not null;uniqueIndex:uk_user_task"`

	CredentialIds   string `json:"credential_ids" gorm:"column:credential_ids;type:text"`
	InstanceIds     string `json:"instance_ids" gorm:"column:instance_ids;type:text"`
	InstanceMapping string `json:"instance_mapping" gorm:"column:instance_mapping;type:text"`

	TemplateId    int64 `json:"template_id" gorm:"column:template_id;default:0"`
	CheckInterval int   `json:"check_interval" gorm:"column:check_interval;default:300"`
	Enabled       bool  `json:"enabled" gorm:"column:enabled;default:false"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (ReplenishTask) TableName() string {
	return "replenish_task"
}
