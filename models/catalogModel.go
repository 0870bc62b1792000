package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Color struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Category is a product line and the shades it comes in.
type Category struct {
	gorm.Model
	Name        string                     `json:"name" gorm:"uniqueIndex;size:64"`
	Description string                     `json:"description"`
	Colors      datatypes.JSONSlice[Color] `json:"colors"`
}
