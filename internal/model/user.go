package model

// User represents an account that can sign up, log in, and own purchase requests
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"type:varchar(50);not null" json:"role"`
}
