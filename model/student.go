package model

type Student struct {
	DTO
	Name   string `json:"name"`
	Email  string `gorm:"uniqueIndex;not null" validate:"required,email" json:"email"`
	Age    int    `json:"age"`
	Course string `json:"course"`
}

type Course struct {
	DTO
	CourseCode string `gorm:"uniqueIndex;not null" validate:"required" json:"courseCode"`
	Course     string `gorm:"uniqueIndex;not null" validate:"required" json:"course"`
	CreditH    int    `gorm:"not null" validate:"required" json:"creditH"`
	Duration   string `gorm:"not null" validate:"required" json:"duration"`
}

type CreateStudentInput struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Age    int    `json:"age" validate:"omitempty,gt=0"`
	Course string `json:"course"`
}

type CreateCourseInput struct {
	CourseCode string `json:"courseCode" validate:"required"`
	Course     string `json:"course" validate:"required"`
	CreditH    int    `json:"creditH" validate:"required,gt=0"`
	Duration   string `json:"duration" validate:"required"`
}
