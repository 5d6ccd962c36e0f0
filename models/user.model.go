package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage    string     `json:"profile_image" gorm:"default:''"`
	Name            string     `json:"name" gorm:"default:''"`
	Email           string     `json:"email" gorm:"unique;not null"`
	Role            string     `json:"role" gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR
	Password        string     `json:"-" gorm:"not null"`
	Bio             string     `json:"bio" gorm:"default:''"`
	CurrentStreak   uint       `json:"current_streak" gorm:"default:0"` // consecutive active days
	LearningMinutes uint       `json:"learning_minutes" gorm:"default:0"`
	LastActiveDate  *time.Time `json:"last_active_date"`
	LastLogin       *time.Time `json:"last_login"`
	IsDeleted       bool       `json:"-" gorm:"default:false"`
}
