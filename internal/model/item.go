package model

import "time"

// Item is one pantry entry owned by a user. Every read and mutation is
// scoped by UserID; an item is never visible to a non-owning user.
type Item struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"-" gorm:"index;not null"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	ExpirationDate time.Time `json:"expiration_date" gorm:"not null"`
	Notes          string    `json:"notes,omitempty" gorm:"size:1024"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// DaysLeft is computed at read time, never persisted.
	DaysLeft int `json:"days_left" gorm:"-"`
}

// AnnotateDaysLeft fills DaysLeft with the whole days between now's date and
// the expiration date. Today is 0, yesterday -1.
func (i *Item) AnnotateDaysLeft(now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	exp := i.ExpirationDate
	expDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, now.Location())
	i.DaysLeft = int(expDay.Sub(today).Hours() / 24)
}
