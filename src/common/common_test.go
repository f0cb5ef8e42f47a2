package common

import (
	"testing"
	"time"

	"shareit/src/apperr"
	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type ServiceSuite struct {
	suite.Suite
	DB *gorm.DB
}

func (s *ServiceSuite) SetupSuite() {
	d, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(s.T(), err)
	sqlDB, err := d.DB()
	require.NoError(s.T(), err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(s.T(), d.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	))
	db.NewDB(d)
	s.DB = d
}

func (s *ServiceSuite) SetupTest() {
	for _, m := range []any{
		&models.Comment{},
		&models.Booking{},
		&models.Item{},
		&models.ItemRequest{},
		&models.User{},
	} {
		s.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m)
	}
}

func (s *ServiceSuite) seed() (owner, booker *models.User, item *models.Item) {
	owner = &models.User{Name: "Owner", Email: "owner@example.com"}
	booker = &models.User{Name: "Booker", Email: "booker@example.com"}
	require.NoError(s.T(), s.DB.Create(owner).Error)
	require.NoError(s.T(), s.DB.Create(booker).Error)
	item = &models.Item{Name: "Saw", Description: "Sharp", Available: true, OwnerID: owner.ID}
	require.NoError(s.T(), s.DB.Create(item).Error)
	return owner, booker, item
}

func (s *ServiceSuite) TestLastAndNextBooking() {
	owner, booker, item := s.seed()
	now := time.Now()

	last, err := FindLastBooking(item.ID, owner.ID)
	s.NoError(err)
	s.Nil(last)
	next, err := FindNextBooking(item.ID, owner.ID)
	s.NoError(err)
	s.Nil(next)

	older := models.Booking{Start: now.Add(-96 * time.Hour), End: now.Add(-72 * time.Hour), Status: types.BOOKING_APPROVED, ItemID: item.ID, BookerID: booker.ID}
	recent := models.Booking{Start: now.Add(-24 * time.Hour), End: now.Add(-12 * time.Hour), Status: types.BOOKING_APPROVED, ItemID: item.ID, BookerID: booker.ID}
	soon := models.Booking{Start: now.Add(12 * time.Hour), End: now.Add(24 * time.Hour), Status: types.BOOKING_WAITING, ItemID: item.ID, BookerID: booker.ID}
	far := models.Booking{Start: now.Add(72 * time.Hour), End: now.Add(96 * time.Hour), Status: types.BOOKING_WAITING, ItemID: item.ID, BookerID: booker.ID}
	for _, b := range []*models.Booking{&older, &recent, &soon, &far} {
		require.NoError(s.T(), s.DB.Create(b).Error)
	}

	last, err = FindLastBooking(item.ID, owner.ID)
	s.NoError(err)
	s.Equal(recent.ID, last.ID)

	next, err = FindNextBooking(item.ID, owner.ID)
	s.NoError(err)
	s.Equal(soon.ID, next.ID)

	// scoped to the owner: a stranger gets nothing
	last, err = FindLastBooking(item.ID, booker.ID)
	s.NoError(err)
	s.Nil(last)
}

func (s *ServiceSuite) TestSetBookingStatusTerminal() {
	owner, booker, item := s.seed()
	now := time.Now()
	booking := models.Booking{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: types.BOOKING_WAITING, ItemID: item.ID, BookerID: booker.ID}
	require.NoError(s.T(), s.DB.Create(&booking).Error)

	_, err := SetBookingStatus(booking.ID, booker.ID, true)
	s.Equal(apperr.KindNotFound, apperr.KindOf(err))

	resp, err := SetBookingStatus(booking.ID, owner.ID, true)
	s.NoError(err)
	s.Equal(types.BOOKING_APPROVED, resp.Status)

	_, err = SetBookingStatus(booking.ID, owner.ID, false)
	s.Equal(apperr.KindBadRequest, apperr.KindOf(err))

	_, err = SetBookingStatus(424242, owner.ID, true)
	s.Equal(apperr.KindNotFound, apperr.KindOf(err))
}

func (s *ServiceSuite) TestUpdateUserMergePatch() {
	owner, _, _ := s.seed()

	name := "Renamed"
	updated, err := UpdateUser(owner.ID, &types.UpdateUserRequestBody{Name: &name})
	s.NoError(err)
	s.Equal("Renamed", updated.Name)
	s.Equal("owner@example.com", updated.Email)

	taken := "booker@example.com"
	_, err = UpdateUser(owner.ID, &types.UpdateUserRequestBody{Email: &taken})
	s.Equal(apperr.KindConflict, apperr.KindOf(err))

	// re-submitting the current email is not a conflict
	same := "owner@example.com"
	_, err = UpdateUser(owner.ID, &types.UpdateUserRequestBody{Email: &same})
	s.NoError(err)
}

func (s *ServiceSuite) TestSearchBlankShortCircuit() {
	s.seed()

	items, err := SearchItems("")
	s.NoError(err)
	s.Empty(items)

	items, err = SearchItems("   ")
	s.NoError(err)
	s.Empty(items)

	items, err = SearchItems("saw")
	s.NoError(err)
	s.Len(items, 1)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}
