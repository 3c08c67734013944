package courseControllers

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"elimu/database"
	"elimu/models"
	courseModels "elimu/models/course"
	courseValidators "elimu/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// enrollRaceDB opens an in-memory database without gorm's per-Create
// transaction so a row inserted from a create callback stays visible after
// the losing insert rolls nothing back.
func enrollRaceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
	))
	return db
}

func TestEnrollInCourseResolvesDuplicateRace(t *testing.T) {
	db := enrollRaceDB(t)
	database.Database = database.DbInstance{Db: db}

	user := models.User{Username: "amina", Email: "amina@elimuspace.com", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{
		Title:        "Introduction to Python",
		Slug:         "introduction-to-python",
		InstructorID: 1,
		IsPublished:  true,
	}
	require.NoError(t, db.Create(&course).Error)

	// A concurrent request wins the insert between the pre-check and Create
	var raced bool
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("enroll_race_winner", func(tx *gorm.DB) {
		if raced || tx.Statement.Table != "enrollments" {
			return
		}
		raced = true
		db.Exec(
			"INSERT INTO enrollments (created_at, updated_at, user_id, course_id, status, progress) VALUES (?, ?, ?, ?, 'active', 0)",
			time.Now(), time.Now(), user.ID, course.ID,
		)
	}))

	app := fiber.New()
	app.Post("/courses/:id/enroll", func(c *fiber.Ctx) error {
		c.Locals("userId", user.ID)
		return c.Next()
	}, courseValidators.EnrollCourse(), EnrollInCourse)

	resp, err := app.Test(httptest.NewRequest("POST", fmt.Sprintf("/courses/%d/enroll", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Already enrolled in this course!")

	var count int64
	db.Model(&courseModels.Enrollment{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
