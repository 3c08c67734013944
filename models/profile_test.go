package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func profileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&User{}, &UserProfile{}, &StudentProfile{}, &InstructorProfile{}, &AdminProfile{},
	))
	return db
}

func countRows(db *gorm.DB, model interface{}, userID uint) int64 {
	var n int64
	db.Model(model).Where("user_id = ?", userID).Count(&n)
	return n
}

func TestCreateProfilesForStudent(t *testing.T) {
	db := profileTestDB(t)
	user := User{Username: "amina", Email: "amina@elimuspace.com", Role: RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, CreateProfilesForUser(db, &user))

	assert.EqualValues(t, 1, countRows(db, &UserProfile{}, user.ID))
	assert.EqualValues(t, 1, countRows(db, &StudentProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &InstructorProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &AdminProfile{}, user.ID))

	var profile StudentProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.NotNil(t, profile.EnrollmentDate)
}

func TestCreateProfilesForInstructor(t *testing.T) {
	db := profileTestDB(t)
	user := User{Username: "jdoe", Email: "jdoe@elimuspace.com", Role: RoleInstructor}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, CreateProfilesForUser(db, &user))

	assert.EqualValues(t, 1, countRows(db, &UserProfile{}, user.ID))
	assert.EqualValues(t, 1, countRows(db, &InstructorProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &StudentProfile{}, user.ID))
}

func TestCreateProfilesForPartnerOnlyShared(t *testing.T) {
	db := profileTestDB(t)
	user := User{Username: "acme", Email: "partner@elimuspace.com", Role: RolePartner}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, CreateProfilesForUser(db, &user))

	assert.EqualValues(t, 1, countRows(db, &UserProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &StudentProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &InstructorProfile{}, user.ID))
	assert.EqualValues(t, 0, countRows(db, &AdminProfile{}, user.ID))
}

func TestCreateProfilesForAdmin(t *testing.T) {
	db := profileTestDB(t)
	user := User{Username: "root", Email: "admin@elimuspace.com", Role: RoleAdmin}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, CreateProfilesForUser(db, &user))

	assert.EqualValues(t, 1, countRows(db, &UserProfile{}, user.ID))
	assert.EqualValues(t, 1, countRows(db, &AdminProfile{}, user.ID))
}

func TestFullNameFallsBackToUsername(t *testing.T) {
	u := User{Username: "amina", FirstName: "Amina", LastName: "Hassan"}
	assert.Equal(t, "Amina Hassan", u.FullName())

	u = User{Username: "amina", FirstName: "Amina"}
	assert.Equal(t, "Amina", u.FullName())

	u = User{Username: "amina"}
	assert.Equal(t, "amina", u.FullName())
}
