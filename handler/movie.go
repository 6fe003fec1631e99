package handler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/helper"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetMovies(c *fiber.Ctx) error {
	filterInput := new(model.FilterMovieInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Movie{})

	if filterInput.Title != "" {
		condition = condition.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filterInput.Title)+"%")
	}
	if filterInput.Year != "" {
		condition = condition.Where("year = ?", filterInput.Year)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var movies []model.Movie
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	condition.Order("id DESC").Find(&movies)

	response := &model.ResponseCustom{
		Rows:       movies,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMovieById(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func CreateMovie(c *fiber.Ctx) error {
	db := database.DB
	movieInput, ok := c.Locals("inputCreateMovie").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, errors.New("parse data to locals fail"))
	}

	var movie model.Movie
	if err := copier.Copy(&movie, &movieInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// optional multipart poster; overrides any poster url in the body
	if file, err := c.FormFile("posterFile"); err == nil && file != nil {
		path, err := savePoster(c, file.Filename)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Poster upload failed", err)
		}
		movie.Poster = path
	}

	movie.Slug = helper.GenerateUniqueMovieSlug(db, movieInput.Title)

	if err := db.Create(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movie)
}

func UpdateMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)
	input := c.Locals("inputEditMovie").(model.EditMovieInput)

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	titleChanged := input.Title != nil && *input.Title != movie.Title

	if err := copier.CopyWithOption(&movie, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if file, err := c.FormFile("posterFile"); err == nil && file != nil {
		path, err := savePoster(c, file.Filename)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Poster upload failed", err)
		}
		movie.Poster = path
	}

	if titleChanged {
		movie.Slug = helper.GenerateUniqueMovieSlug(db, movie.Title)
	}

	if err := db.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

func DeleteMovie(c *fiber.Ctx) error {
	movieId := c.Locals("inputId").(int)

	db := database.DB
	var movie model.Movie
	if err := db.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// refuse when scheduled showtimes still reference the movie
	var count int64
	db.Model(&model.Showtime{}).
		Where("movie_id = ? AND status = ?", movieId, constants.SHOWTIME_SCHEDULED).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Movie has scheduled showtimes", errors.New("showtimes exist"))
	}

	if err := db.Delete(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": movie.ID})
}

// DeleteMovies removes a batch of movies. The whole batch is refused when
// any selected movie still has scheduled showtimes.
func DeleteMovies(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	db := database.DB

	var movies []model.Movie
	if err := db.Where("id IN ?", input.IDs).Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(movies) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MOVIE_NOT_FOUND, nil)
	}

	var count int64
	db.Model(&model.Showtime{}).
		Where("movie_id IN ? AND status = ?", input.IDs, constants.SHOWTIME_SCHEDULED).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Movie has scheduled showtimes", errors.New("showtimes exist"))
	}

	if err := db.Delete(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	deleted := make([]uint, 0, len(movies))
	for _, m := range movies {
		deleted = append(deleted, m.ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}

func savePoster(c *fiber.Ctx, filename string) (string, error) {
	file, err := c.FormFile("posterFile")
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))
	dest := filepath.Join("./uploads", name)
	if err := c.SaveFile(file, dest); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}
