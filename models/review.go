package models

import "time"

// Subject types a Review can attach to
const (
	SubjectHotel = "hotels"
	SubjectFood  = "foods"
)

// Review is one user's rating of a Hotel or Food. Reviewer uniqueness per
// subject is maintained by the upsert path, not a unique index.
type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	SubjectID   uint      `json:"-" gorm:"index:idx_review_subject"`
	SubjectType string    `json:"-" gorm:"index:idx_review_subject"`
	UserID      uint      `json:"userId" gorm:"not null" validate:"required"`
	User        User      `json:"user,omitempty" gorm:"foreignKey:UserID" validate:"-"`
	Rating      float64   `json:"rating" gorm:"not null" validate:"min=0,max=5"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
}
