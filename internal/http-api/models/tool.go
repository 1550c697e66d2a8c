package models

import "time"

type Tool struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string    `json:"name" gorm:"uniqueIndex;size:200;not null"`
	Description       string    `json:"description" gorm:"type:text;not null"`
	Category          string    `json:"category" gorm:"index;not null"`
	Language          *string   `json:"language,omitempty"`
	GithubURL         *string   `json:"github_url,omitempty"`
	WebsiteURL        *string   `json:"website_url,omitempty"`
	Tags              *string   `json:"tags,omitempty"` // comma-separated
	InstallationGuide *string   `json:"installation_guide,omitempty" gorm:"type:text"`
	UsageExample      *string   `json:"usage_example,omitempty" gorm:"type:text"`
	Author            *string   `json:"author,omitempty"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// association
	Ratings []Rating `json:"ratings,omitempty" gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE;"`
}

func (Tool) TableName() string {
	return "tools"
}
