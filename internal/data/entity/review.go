package entity

import (
	"time"
)

// Review is one user review row. Rating ranges 1-5.
type Review struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostedOn time.Time `gorm:"column:posted_on;not null;index" json:"posted_on"`
	Rating   int       `gorm:"column:rating;not null;index" json:"rating"`
	Username string    `gorm:"column:username;size:64;not null" json:"username"`
	Title    string    `gorm:"column:title;size:255;not null" json:"title"`
	Comments string    `gorm:"column:comments;type:text" json:"comments"`
}

// TableName pins the table instead of relying on the naming strategy
func (Review) TableName() string {
	return "reviews"
}

// Review column names that queries may filter or sort on
const (
	ReviewColumnID       = "id"
	ReviewColumnPostedOn = "posted_on"
	ReviewColumnRating   = "rating"
	ReviewColumnUsername = "username"
	ReviewColumnTitle    = "title"
	ReviewColumnComments = "comments"
)

var ReviewColumns = map[string]struct{}{
	ReviewColumnID:       {},
	ReviewColumnPostedOn: {},
	ReviewColumnRating:   {},
	ReviewColumnUsername: {},
	ReviewColumnTitle:    {},
	ReviewColumnComments: {},
}
