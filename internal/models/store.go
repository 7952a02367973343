package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Store struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Address     string `gorm:"size:255;not null" json:"address"`
	Description string `gorm:"type:text" json:"description"`

	Services StringList `gorm:"type:text" json:"services"`
	Barbers  StringList `gorm:"type:text" json:"barbers"`
	Images   StringList `gorm:"type:text" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// HasBarber reports whether name is one of the store's listed barbers.
func (s *Store) HasBarber(name string) bool {
	for _, b := range s.Barbers {
		if b == name {
			return true
		}
	}
	return false
}

// ===============================
// StringList
// ===============================

// StringList is an ordered list of names stored as a JSON text column.
// Older rows stored services as objects ({"name": "Fade Cut"}) while newer
// ones store plain strings; UnmarshalJSON accepts both so every caller sees
// plain strings.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("stringlist: unsupported column type")
	}

	if len(raw) == 0 {
		*l = StringList{}
		return nil
	}

	return l.UnmarshalJSON(raw)
}

func (l *StringList) UnmarshalJSON(data []byte) error {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			out = append(out, s)
			continue
		}

		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &obj); err != nil {
			return err
		}
		out = append(out, obj.Name)
	}

	*l = out
	return nil
}
