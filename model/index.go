package model

import (
	"time"

	"gorm.io/gorm"
)

type TokenClaim struct {
	UserId uint   `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type DTO struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

type ResponseCustom struct {
	Rows       any   `json:"rows"`
	Limit      *int  `json:"limit"`
	Page       *int  `json:"page"`
	TotalCount int64 `json:"totalCount"`
}

type Pagination struct {
	Limit *int `query:"limit" json:"limit"`
	Page  *int `query:"page" json:"page"`
}

type ArrayId struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}
