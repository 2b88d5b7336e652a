// Package prefs persists the two presentation preferences (dark mode
// and font size) in a local sqlite file. They are read at startup and
// written on every change; nothing else in the system is persisted.
package prefs

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DefaultDark     = true
	DefaultFontSize = 14

	MinFontSize = 12
	MaxFontSize = 20
)

// Preferences is the stored single row.
type Preferences struct {
	ID       uint `gorm:"primaryKey" json:"-"`
	Dark     bool `json:"dark"`
	FontSize int  `json:"font_size"`
}

// Store reads and writes Preferences.
type Store struct {
	db *gorm.DB
}

// NewStore opens (and migrates) the preferences database at path.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences database: %w", err)
	}
	if err := db.AutoMigrate(&Preferences{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences database: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the stored preferences, or the documented defaults
// (dark=true, fontSize=14) when nothing has been saved yet.
func (s *Store) Load() (Preferences, error) {
	var p Preferences
	err := s.db.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Preferences{Dark: DefaultDark, FontSize: DefaultFontSize}, nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return p, nil
}

// SetDark stores the dark-mode flag.
func (s *Store) SetDark(dark bool) (Preferences, error) {
	return s.update(func(p *Preferences) { p.Dark = dark })
}

// SetFontSize stores the font size, clamped to the slider range.
func (s *Store) SetFontSize(size int) (Preferences, error) {
	if size < MinFontSize {
		size = MinFontSize
	}
	if size > MaxFontSize {
		size = MaxFontSize
	}
	return s.update(func(p *Preferences) { p.FontSize = size })
}

// Reset restores the defaults and persists them.
func (s *Store) Reset() (Preferences, error) {
	return s.update(func(p *Preferences) {
		p.Dark = DefaultDark
		p.FontSize = DefaultFontSize
	})
}

func (s *Store) update(apply func(*Preferences)) (Preferences, error) {
	var p Preferences
	err := s.db.First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = Preferences{Dark: DefaultDark, FontSize: DefaultFontSize}
	} else if err != nil {
		return Preferences{}, err
	}
	apply(&p)
	if err := s.db.Save(&p).Error; err != nil {
		return Preferences{}, err
	}
	return p, nil
}
