package models

import "time"

// Order is an immutable snapshot of a cart. Status false means booked, true
// means delivered.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	BillNo    string      `json:"billno" gorm:"uniqueIndex;size:32"`
	UserID    uint        `json:"userId" gorm:"index"`
	Status    bool        `json:"status"`
	Date      time.Time   `json:"date" gorm:"index"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

type OrderItem struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	OrderID  uint   `json:"-"`
	Category string `json:"category" binding:"required"`
	Color    string `json:"color" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
}

type OrderRequest struct {
	Items []OrderItem `json:"items" binding:"required,min=1,dive"`
}

// BillCounter backs bill numbers when no Redis is configured.
type BillCounter struct {
	Name  string `gorm:"primaryKey;size:32"`
	Value int64
}
