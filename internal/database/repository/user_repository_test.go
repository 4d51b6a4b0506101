package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mkulima/livestock-market/internal/database/models"
)

// setupTestDB opens an in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Farmer{},
		&models.Broker{},
		&models.Livestock{},
		&models.RefreshToken{},
	))

	return db
}

func newTestUser(email string) *models.User {
	return &models.User{
		Name:         "Test User",
		Email:        email,
		Phone:        "0712345678",
		Role:         models.RoleUser,
		PasswordHash: "hash",
		IsActive:     true,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("one@example.com")
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byEmail, err := repo.FindByEmail("one@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "one@example.com", byID.Email)

	_, err = repo.FindByEmail("missing@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	require.NoError(t, repo.Create(newTestUser("dup@example.com")))

	err := repo.Create(newTestUser("dup@example.com"))
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestUserRepository_CreateWithProfile(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := newTestUser("farmer@example.com")
	user.Role = models.RoleFarmer
	farmer := &models.Farmer{FarmName: "Green Acres", FarmLocation: "Nakuru", IsActive: true}

	require.NoError(t, repo.CreateWithProfile(user, farmer, nil))
	assert.Equal(t, user.ID, farmer.UserID)

	var count int64
	db.Model(&models.Farmer{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_CreateWithProfile_RollsBackOnDuplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	first := newTestUser("taken@example.com")
	require.NoError(t, repo.Create(first))

	dup := newTestUser("taken@example.com")
	dup.Role = models.RoleFarmer
	farmer := &models.Farmer{FarmName: "Orphan Farm", IsActive: true}

	err := repo.CreateWithProfile(dup, farmer, nil)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	// Nothing from the failed registration may persist
	var farmerCount int64
	db.Model(&models.Farmer{}).Count(&farmerCount)
	assert.Equal(t, int64(0), farmerCount)

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	assert.Equal(t, int64(1), userCount)
}

func TestUserRepository_SoftDeleteAndRestore(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	user := newTestUser("gone@example.com")
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.SoftDelete(user.ID))

	// Soft-deleted users disappear from default reads
	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByEmail("gone@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	users, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, users)

	// Deleting again reports not found
	assert.ErrorIs(t, repo.SoftDelete(user.ID), ErrUserNotFound)

	require.NoError(t, repo.Restore(user.ID))
	restored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
	assert.Nil(t, restored.DeletedAt)
}

func TestUserRepository_ListByRole(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	farmer := newTestUser("f@example.com")
	farmer.Role = models.RoleFarmer
	require.NoError(t, repo.Create(farmer))
	require.NoError(t, repo.Create(newTestUser("u@example.com")))

	farmers, err := repo.ListByRole(models.RoleFarmer)
	require.NoError(t, err)
	require.Len(t, farmers, 1)
	assert.Equal(t, "f@example.com", farmers[0].Email)
}
