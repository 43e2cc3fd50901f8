package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRecord is the database row for one category. Position preserves
// dictionary order.
type CategoryRecord struct {
	ID        uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	Name      string                  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Position  int                     `gorm:"not null;index" json:"position"`
	Keywords  []CategoryKeywordRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"keywords"`
	CreatedAt time.Time               `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time               `gorm:"not null" json:"updated_at"`
}

// CategoryKeywordRecord is the database row for one keyword of a category
type CategoryKeywordRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"category_id"`
	Keyword    string    `gorm:"type:varchar(255);not null" json:"keyword"`
	Position   int       `gorm:"not null" json:"position"`
}

// TableName returns the table name for CategoryRecord
func (c *CategoryRecord) TableName() string {
	return "categories"
}

// TableName returns the table name for CategoryKeywordRecord
func (k *CategoryKeywordRecord) TableName() string {
	return "category_keywords"
}

// BeforeCreate hook for CategoryRecord
func (c *CategoryRecord) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate hook for CategoryKeywordRecord
func (k *CategoryKeywordRecord) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}

// RecordsFromDictionary flattens a dictionary into rows, positions starting at 0
func RecordsFromDictionary(d *CategoryDictionary) []CategoryRecord {
	records := make([]CategoryRecord, 0, d.Len())
	for i, name := range d.names {
		rec := CategoryRecord{
			ID:       uuid.New(),
			Name:     name,
			Position: i,
		}
		for j, kw := range d.keywords[name] {
			rec.Keywords = append(rec.Keywords, CategoryKeywordRecord{
				ID:         uuid.New(),
				CategoryID: rec.ID,
				Keyword:    kw,
				Position:   j,
			})
		}
		records = append(records, rec)
	}
	return records
}

// DictionaryFromRecords rebuilds a dictionary. Records and their keywords
// must already be sorted by position.
func DictionaryFromRecords(records []CategoryRecord) *CategoryDictionary {
	d := NewCategoryDictionary()
	for _, rec := range records {
		kws := make([]string, 0, len(rec.Keywords))
		for _, k := range rec.Keywords {
			kws = append(kws, k.Keyword)
		}
		d.Add(rec.Name, kws...)
	}
	return d
}
