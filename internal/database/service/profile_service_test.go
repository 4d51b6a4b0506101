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

func setupProfileServices(t *testing.T) (FarmerService, BrokerService, UserService, *gorm.DB) {
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

	userRepo := repository.NewUserRepository(db)
	farmerRepo := repository.NewFarmerRepository(db)
	brokerRepo := repository.NewBrokerRepository(db)
	livestockRepo := repository.NewLivestockRepository(db)

	farmerSvc := NewFarmerService(farmerRepo, userRepo, livestockRepo, testLogger())
	brokerSvc := NewBrokerService(brokerRepo, userRepo, testLogger())
	userSvc := NewUserService(userRepo, testLogger())
	return farmerSvc, brokerSvc, userSvc, db
}

func TestFarmerService_CreateFarmer(t *testing.T) {
	farmerSvc, _, _, db := setupProfileServices(t)
	user := seedUser(t, db, "farmer@example.com")

	_, err := farmerSvc.CreateFarmer(user.ID, "A", "Nakuru")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Farm name must be at least 2 characters long", validationErr.Message)

	_, err = farmerSvc.CreateFarmer(999, "Green Acres", "Nakuru")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	farmer, err := farmerSvc.CreateFarmer(user.ID, "Green Acres", "Nakuru")
	require.NoError(t, err)
	assert.Equal(t, user.ID, farmer.UserID)

	// One farmer profile per user
	_, err = farmerSvc.CreateFarmer(user.ID, "Second Farm", "Eldoret")
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestFarmerService_ListFarmerLivestock(t *testing.T) {
	farmerSvc, _, _, db := setupProfileServices(t)
	user := seedUser(t, db, "farmer@example.com")
	other := seedUser(t, db, "other@example.com")

	farmer, err := farmerSvc.CreateFarmer(user.ID, "Green Acres", "Nakuru")
	require.NoError(t, err)

	livestockRepo := repository.NewLivestockRepository(db)
	require.NoError(t, livestockRepo.Create(&models.Livestock{
		Breed: "Boran", Age: "2 years", Weight: "350kg", Price: 45000,
		Location: "Nakuru", OwnerID: user.ID, IsActive: true,
	}))
	require.NoError(t, livestockRepo.Create(&models.Livestock{
		Breed: "Sahiwal", Age: "3 years", Weight: "400kg", Price: 52000,
		Location: "Eldoret", OwnerID: other.ID, IsActive: true,
	}))

	listings, err := farmerSvc.ListFarmerLivestock(farmer.ID)
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, user.ID, listings[0].OwnerID)

	_, err = farmerSvc.ListFarmerLivestock(999)
	assert.ErrorIs(t, err, repository.ErrFarmerNotFound)
}

func TestBrokerService_CreateBroker(t *testing.T) {
	_, brokerSvc, _, db := setupProfileServices(t)
	user := seedUser(t, db, "broker@example.com")

	_, err := brokerSvc.CreateBroker(user.ID, " ", "Nairobi CBD")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	broker, err := brokerSvc.CreateBroker(user.ID, "Maziwa Traders", "Nairobi CBD")
	require.NoError(t, err)
	assert.Equal(t, user.ID, broker.UserID)

	_, err = brokerSvc.CreateBroker(user.ID, "Another Co", "Mombasa")
	assert.ErrorIs(t, err, ErrProfileExists)
}

func TestUserService_UpdateProfile(t *testing.T) {
	_, _, userSvc, db := setupProfileServices(t)
	user := seedUser(t, db, "user@example.com")

	newName := "Renamed Seller"
	badPhone := "123"
	goodPhone := "0798765432"

	_, err := userSvc.UpdateProfile(user.ID, UpdateProfileInput{Phone: &badPhone})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Phone must be 10 digits", validationErr.Message)

	updated, err := userSvc.UpdateProfile(user.ID, UpdateProfileInput{
		Name:  &newName,
		Phone: &goodPhone,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, goodPhone, updated.Phone)

	// Untouched fields survive partial updates
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestUserService_DeleteAndRestore(t *testing.T) {
	_, _, userSvc, db := setupProfileServices(t)
	user := seedUser(t, db, "user@example.com")

	require.NoError(t, userSvc.DeleteProfile(user.ID))
	_, err := userSvc.GetProfile(user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	require.NoError(t, userSvc.RestoreUser(user.ID))
	restored, err := userSvc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)
}
