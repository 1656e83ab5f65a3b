package model

import "time"

// InstanceTemplate is the provisioning blueprint used by the replenish
// orchestrator. At most one template per (user, provider) may be marked
// default; SetDefault clears the previous default first.
type InstanceTemplate struct {
	Id           int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId       string `json:"user_id" gorm:"column:user_id;size:64;not null;index"`
	TemplateName string `json:"template_name" gorm:"column:template_name;size:100;not null"`
	Provider     string `json:"provider" gorm:"column:provider;size:50;not null;index"`

	Region       string `json:"region" gorm:"column:region;size:50;not null"`
	Plan         string `json:"plan" gorm:"column:plan;size:100;not null"`
	Image        string `json:"image" gorm:"column:image;size:100;not null"`
	DiskGB       int    `json:"disk_gb" gorm:"column:disk_gb;default:0"`
	EnableIPv6   bool   `json:"enable_ipv6" gorm:"column:enable_ipv6;default:false"`
	SeedScript   string `json:"seed_script" gorm:"column:seed_script;type:text"`
	RootPassword string `json:"-" gorm:"column:root_password;size:200"`

	IsDefault   bool   `json:"is_default" gorm:"column:is_default;default:false;index"`
	Description string `json:"description" gorm:"column:description;size:500"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (InstanceTemplate) TableName() string {
	return "instance_template"
}
