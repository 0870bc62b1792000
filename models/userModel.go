package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AuthorityUser  = "user"
	AuthorityAdmin = "admin"
)

type User struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Username      string         `json:"username" gorm:"uniqueIndex;size:64"`
	Phone         string         `json:"phone" gorm:"uniqueIndex;size:32"`
	Email         string         `json:"email" gorm:"uniqueIndex;size:191"`
	Password      string         `json:"-"`
	Authority     string         `json:"authority" gorm:"size:16;default:user"`
	FamilyMembers []FamilyMember `json:"familyMembers,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"-"`
}

type FamilyMember struct {
	gorm.Model
	UserID   uint   `json:"userId"`
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"required,gt=0,lt=150"`
	Gender   string `json:"gender" binding:"required"`
	Relation string `json:"relation" binding:"required"`
}

type SignupData struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginData identifies the user by e-mail, phone or username.
type LoginData struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
