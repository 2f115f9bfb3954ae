package settings

import "time"

// Setting is one row of the key/value settings table. Value is nullable; the
// type it encodes is decided by whoever reads the key.
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Key       string    `gorm:"uniqueIndex;not null;type:varchar(255)" json:"key"`
	Value     *string   `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the table name regardless of naming strategy.
func (Setting) TableName() string {
	return "settings"
}
