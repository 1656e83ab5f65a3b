package model

import "time"

// Credential is a stored, encrypted third-party provider key owned by a
// user. Health fields are mutated only by the health sweep; the replenish
// orchestrator reads them but never writes.
type Credential struct {
	Id       int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	UserId   string `json:"user_id" gorm:"column:user_id;size:64;not null;index"`
	Name     string `json:"name" gorm:"column:name;size:100;not null"`
	Provider string `json:"provider" gorm:"column:provider;size:50;not null;index"`
	Group    string `json:"group" gorm:"column:cred_group;size:50;not null;default:'personal';index"`

	EncryptedSecret string `json:"-" gorm:"column:encrypted_secret;type:text;not null"`

	HealthStatus  string     `json:"health_status" gorm:"column:health_status;size:50;not null;default:'unknown';index"`
	LastCheckedAt *time.Time `json:"last_checked_at" gorm:"column:last_checked_at"`
	LastError     string     `json:"last_error" gorm:"column:last_error;type:text"`

	CreateTime time.Time `json:"create_time" gorm:"column:gmt_create;autoCreateTime"`
	UpdateTime time.Time `json:"update_time" gorm:"column:gmt_modified;autoUpdateTime"`
}

func (Credential) TableName() string {
	return "credential"
}

// HealthStatus values. Checking is a transient state while a sweep holds
// the credential; unknown means never probed.
const (
	HealthStatusUnknown   = "unknown"
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	HealthStatusLimited   = "limited"
	HealthStatusChecking  = "checking"
)

// Credential group values.
const (
	CredentialGroupPersonal = "personal"
	CredentialGroupRental   = "rental"
)
