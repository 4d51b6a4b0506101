package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mkulima/livestock-market/internal/database/models"
	"github.com/mkulima/livestock-market/internal/database/repository"
)

func setupLivestockService(t *testing.T) (LivestockService, *gorm.DB) {
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

	livestockRepo := repository.NewLivestockRepository(db)
	userRepo := repository.NewUserRepository(db)
	return NewLivestockService(livestockRepo, userRepo, testLogger()), db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Seller",
		Email:        email,
		Phone:        "0712345678",
		Role:         models.RoleFarmer,
		PasswordHash: "hash",
		IsActive:     true,
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

func validListingInput() LivestockInput {
	return LivestockInput{
		Breed:    "Boran",
		Age:      "2 years",
		Weight:   "350kg",
		Price:    45000,
		Location: "Nakuru",
	}
}

func TestLivestockService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*LivestockInput)
		wantErr string
	}{
		{
			name:    "zero price",
			mutate:  func(in *LivestockInput) { in.Price = 0 },
			wantErr: "Price must be greater than 0",
		},
		{
			name:    "negative price",
			mutate:  func(in *LivestockInput) { in.Price = -100 },
			wantErr: "Price must be greater than 0",
		},
		{
			name:    "missing breed",
			mutate:  func(in *LivestockInput) { in.Breed = "" },
			wantErr: "Missing required fields",
		},
		{
			name:    "missing location",
			mutate:  func(in *LivestockInput) { in.Location = "" },
			wantErr: "Missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := setupLivestockService(t)
			owner := seedUser(t, db, "seller@example.com")

			input := validListingInput()
			tt.mutate(&input)

			_, err := svc.CreateLivestock(owner.ID, input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Message)
		})
	}
}

func TestLivestockService_CreateRequiresExistingOwner(t *testing.T) {
	svc, _ := setupLivestockService(t)

	_, err := svc.CreateLivestock(999, validListingInput())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestLivestockService_OwnershipEnforced(t *testing.T) {
	svc, db := setupLivestockService(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	listing, err := svc.CreateLivestock(owner.ID, validListingInput())
	require.NoError(t, err)

	_, err = svc.UpdateLivestock(listing.ID, other.ID, validListingInput())
	assert.ErrorIs(t, err, ErrNotOwner)

	assert.ErrorIs(t, svc.DeleteLivestock(listing.ID, other.ID), ErrNotOwner)

	// The owner can do both
	updated, err := svc.UpdateLivestock(listing.ID, owner.ID, LivestockInput{
		Breed: "Sahiwal", Age: "3 years", Weight: "400kg", Price: 52000, Location: "Eldoret",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sahiwal", updated.Breed)
	assert.Equal(t, 52000.0, updated.Price)

	require.NoError(t, svc.DeleteLivestock(listing.ID, owner.ID))
}

func TestLivestockService_DeleteAndRestore(t *testing.T) {
	svc, db := setupLivestockService(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	listing, err := svc.CreateLivestock(owner.ID, validListingInput())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteLivestock(listing.ID, owner.ID))

	// Deleted listings vanish from reads
	_, err = svc.GetLivestock(listing.ID)
	assert.ErrorIs(t, err, repository.ErrLivestockNotFound)

	all, err := svc.ListLivestock()
	require.NoError(t, err)
	assert.Empty(t, all)

	// Only the owner may restore
	assert.ErrorIs(t, svc.RestoreLivestock(listing.ID, other.ID), ErrNotOwner)

	require.NoError(t, svc.RestoreLivestock(listing.ID, owner.ID))
	restored, err := svc.GetLivestock(listing.ID)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, restored.ID)
}

func TestLivestockService_ListOwnedLivestock(t *testing.T) {
	svc, db := setupLivestockService(t)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	_, err := svc.CreateLivestock(owner.ID, validListingInput())
	require.NoError(t, err)
	_, err = svc.CreateLivestock(other.ID, validListingInput())
	require.NoError(t, err)

	mine, err := svc.ListOwnedLivestock(owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)
	assert.Equal(t, owner.ID, mine[0].OwnerID)
}
