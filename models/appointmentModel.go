package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	UserID      uint      `json:"userId" gorm:"index"`
	PatientName string    `json:"patientName" binding:"required"`
	Age         int       `json:"age" binding:"required,gt=0,lt=150"`
	Gender      string    `json:"gender" binding:"required"`
	Contact     string    `json:"contact" binding:"required"`
	Reason      string    `json:"reason"`
	Date        time.Time `json:"date" binding:"required"`
	TimeSlot    string    `json:"timeSlot" binding:"required,oneof=Morning Afternoon Evening"`
}
