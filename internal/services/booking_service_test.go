package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelier/internal/models"
	"hotelier/internal/repositories"
	"hotelier/internal/services"
)

// MockBookingRepository is a mock implementation of repositories.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetAllByUser(userID uint) ([]models.Booking, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDForUser(bookingID, userID uint) (*models.Booking, error) {
	args := m.Called(bookingID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(booking *models.Booking) error {
	args := m.Called(booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateFieldsForUser(bookingID, userID uint, fields map[string]interface{}) (*models.Booking, error) {
	args := m.Called(bookingID, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishBookingEvent(event string, payload map[string]interface{}) error {
	args := m.Called(event, payload)
	return args.Error(0)
}

func TestBookingService_CreateBookingPublishesEvent(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockPublisher := new(MockEventPublisher)
	bookingService := services.NewBookingService(mockRepo, mockPublisher)

	booking := &models.Booking{UserID: 5, RoomID: 2, TotalGuests: 2, TotalPrice: 1000}

	mockRepo.On("Create", booking).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Booking).BookingID = 9
	}).Return(nil).Once()
	mockRepo.On("GetByIDForUser", uint(9), uint(5)).Return(&models.Booking{
		BookingID: 9, UserID: 5, RoomID: 2, TotalGuests: 2, TotalPrice: 1000,
	}, nil).Once()
	mockPublisher.On("PublishBookingEvent", "booking.created", mock.MatchedBy(func(payload map[string]interface{}) bool {
		return payload["booking_id"] == uint(9) && payload["user_id"] == uint(5) && payload["event_id"] != ""
	})).Return(nil).Once()

	created, err := bookingService.CreateBooking(booking)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), created.BookingID)

	mockRepo.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestBookingService_CreateBookingWithoutPublisher(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	bookingService := services.NewBookingService(mockRepo, nil)

	booking := &models.Booking{UserID: 5, RoomID: 2}
	mockRepo.On("Create", booking).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Booking).BookingID = 1
	}).Return(nil).Once()
	mockRepo.On("GetByIDForUser", uint(1), uint(5)).Return(&models.Booking{BookingID: 1, UserID: 5}, nil).Once()

	created, err := bookingService.CreateBooking(booking)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), created.BookingID)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_UpdateBookingNotOwned(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockPublisher := new(MockEventPublisher)
	bookingService := services.NewBookingService(mockRepo, mockPublisher)

	fields := map[string]interface{}{"total_guests": 4}
	mockRepo.On("UpdateFieldsForUser", uint(9), uint(6), fields).
		Return(nil, repositories.ErrNotFound).Once()

	_, err := bookingService.UpdateBooking(9, 6, fields)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// No event is published for a failed update.
	mockPublisher.AssertNotCalled(t, "PublishBookingEvent", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}
