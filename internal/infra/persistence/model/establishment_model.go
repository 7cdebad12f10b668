package model

import "time"

// EstablishmentModel is the GORM-specific struct for the 'establishments' table.
// The source id carries the upsert key; lat/lon stay nullable because the
// source frequently omits coordinates.
type EstablishmentModel struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	SourceID       string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_establishments_source_id"`
	Name           *string    `gorm:"type:varchar(255);index:idx_establishments_name"`
	Type           string     `gorm:"type:varchar(50);index:idx_establishments_type"`
	Cuisine        string     `gorm:"type:text"`
	Phone          string     `gorm:"type:varchar(100)"`
	Website        string     `gorm:"type:text"`
	Email          string     `gorm:"type:varchar(255)"`
	Street         string     `gorm:"type:varchar(255)"`
	Housenumber    string     `gorm:"type:varchar(50)"`
	Postcode       string     `gorm:"type:varchar(20)"`
	City           string     `gorm:"type:varchar(255);index:idx_establishments_city"`
	Department     string     `gorm:"type:varchar(255);index:idx_establishments_department"`
	Region         string     `gorm:"type:varchar(255)"`
	OpeningHours   string     `gorm:"type:text"`
	Wheelchair     string     `gorm:"type:varchar(20)"`
	Delivery       string     `gorm:"type:varchar(20)"`
	Takeaway       string     `gorm:"type:varchar(20)"`
	OutdoorSeating string     `gorm:"type:varchar(20)"`
	Lat            *float64   `gorm:"type:decimal(10,8)"`
	Lon            *float64   `gorm:"type:decimal(11,8)"`
	OSMID          string     `gorm:"column:osm_id;type:varchar(255)"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	LastUpdate     *time.Time `gorm:"column:last_update;autoUpdateTime:false"` // Set only by sync overwrites.
}

// TableName explicitly sets the table name for GORM.
func (EstablishmentModel) TableName() string {
	return "establishments"
}
