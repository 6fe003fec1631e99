package model

type Movie struct {
	DTO
	Title  string `gorm:"not null" validate:"required" json:"title"`
	Year   string `json:"year"`
	Plot   string `json:"plot"`
	Poster string `json:"poster"`
	Slug   string `gorm:"uniqueIndex" json:"slug"`
}

type CreateMovieInput struct {
	Title  string `json:"title" form:"title" validate:"required"`
	Year   string `json:"year" form:"year"`
	Plot   string `json:"plot" form:"plot"`
	Poster string `json:"poster" form:"poster"`
}

type FilterMovieInput struct {
	Pagination
	Title string `query:"title"`
	Year  string `query:"year"`
}

type EditMovieInput struct {
	Title  *string `json:"title" form:"title"`
	Year   *string `json:"year" form:"year"`
	Plot   *string `json:"plot" form:"plot"`
	Poster *string `json:"poster" form:"poster"`
}
