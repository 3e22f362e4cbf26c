package entities

import "time"

type Timestamp struct {
	CreatedAt time.Time `gorm:"type:timestamp;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;autoUpdateTime" json:"updated_at"`
}
