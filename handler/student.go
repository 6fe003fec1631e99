package handler

import (
	"errors"

	"cinema_booking/constants"
	"cinema_booking/database"
	"cinema_booking/model"
	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetStudents(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Student{})

	var totalCount int64
	condition.Count(&totalCount)

	var students []model.Student
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	condition.Order("id ASC").Find(&students)

	response := &model.ResponseCustom{
		Rows:       students,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetStudentById(c *fiber.Ctx) error {
	studentId := c.Locals("inputId").(int)

	var student model.Student
	if err := database.DB.First(&student, studentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STUDENT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, student)
}

func CreateStudent(c *fiber.Ctx) error {
	input := c.Locals("inputCreateStudent").(model.CreateStudentInput)

	var student model.Student
	if err := copier.Copy(&student, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Create(&student).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, student)
}

func UpdateStudent(c *fiber.Ctx) error {
	studentId := c.Locals("inputId").(int)

	var input model.CreateStudentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var student model.Student
	if err := db.First(&student, studentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STUDENT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.CopyWithOption(&student, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Save(&student).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, student)
}

func DeleteStudents(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	db := database.DB

	var students []model.Student
	if err := db.Where("id IN ?", input.IDs).Find(&students).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(students) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STUDENT_NOT_FOUND, nil)
	}

	if err := db.Delete(&students).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	deleted := make([]uint, 0, len(students))
	for _, s := range students {
		deleted = append(deleted, s.ID)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}

func DeleteStudent(c *fiber.Ctx) error {
	studentId := c.Locals("inputId").(int)

	db := database.DB
	var student model.Student
	if err := db.First(&student, studentId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STUDENT_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&student).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": student.ID})
}
