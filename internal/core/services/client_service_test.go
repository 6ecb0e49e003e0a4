package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petcarehq/petcare-backend/internal/apperrors"
	"github.com/petcarehq/petcare-backend/internal/core/domain"
	"github.com/petcarehq/petcare-backend/internal/core/services"
	"github.com/petcarehq/petcare-backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClients   *MockClientRepository
	mockLocations *MockLocationRepository
	service       *services.ClientService
}

func (s *ClientServiceTestSuite) SetupTest() {
	s.mockClients = new(MockClientRepository)
	s.mockLocations = new(MockLocationRepository)
	s.service = services.NewClientService(s.mockClients, s.mockLocations)
}

func (s *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	locationID := uuid.NewString()
	req := dto.CreateClientRequest{
		FirstName:    "Laura",
		LastName:     "Mendez",
		Phone:        "555-0101",
		LocationID:   &locationID,
		ConsentGiven: true,
	}

	s.mockClients.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := s.service.CreateClient(ctx, req, userID)

	s.Require().NoError(err)
	s.Require().NotNil(client)
	s.NotEmpty(client.ClientID)
	s.Equal("Laura", client.FirstName)
	s.True(client.ConsentGiven)
	s.Require().NotNil(client.LocationID)
	s.Equal(locationID, *client.LocationID)
	s.Equal(userID, client.CreatedBy)
	s.WithinDuration(time.Now(), client.CreatedAt, time.Second)
	s.mockClients.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestCreateClient_ConsentRequired() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		FirstName:    "Laura",
		Phone:        "555-0101",
		ConsentGiven: false,
	}

	client, err := s.service.CreateClient(ctx, req, uuid.NewString())

	s.Require().Error(err)
	s.Nil(client)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockClients.AssertNotCalled(s.T(), "SaveClient", mock.Anything, mock.Anything)
}

// A client registered without a branch gets the first active one, once, at
// creation. Updates never re-default the link.
func (s *ClientServiceTestSuite) TestCreateClient_DefaultsToFirstActiveLocation() {
	ctx := context.Background()
	mainBranch := domain.Location{LocationID: uuid.NewString(), Name: "Sucursal Centro", IsActive: true}
	s.mockLocations.On("ListLocations", ctx, true).Return([]domain.Location{mainBranch}, nil).Once()
	s.mockClients.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	req := dto.CreateClientRequest{FirstName: "Laura", Phone: "555-0101", ConsentGiven: true}

	client, err := s.service.CreateClient(ctx, req, uuid.NewString())

	s.Require().NoError(err)
	s.Require().NotNil(client.LocationID)
	s.Equal(mainBranch.LocationID, *client.LocationID)
	s.mockLocations.AssertExpectations(s.T())
}

func (s *ClientServiceTestSuite) TestCreateClient_NoLocationsConfigured() {
	ctx := context.Background()
	s.mockLocations.On("ListLocations", ctx, true).Return([]domain.Location{}, nil).Once()
	s.mockClients.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	req := dto.CreateClientRequest{FirstName: "Laura", Phone: "555-0101", ConsentGiven: true}

	client, err := s.service.CreateClient(ctx, req, uuid.NewString())

	s.Require().NoError(err)
	s.Nil(client.LocationID)
}

func (s *ClientServiceTestSuite) TestUpdateClient_KeepsLocationUnlessProvided() {
	ctx := context.Background()
	locationID := uuid.NewString()
	existing := &domain.Client{
		ClientID:     uuid.NewString(),
		LocationID:   &locationID,
		FirstName:    "Laura",
		Phone:        "555-0101",
		ConsentGiven: true,
	}
	s.mockClients.On("FindClientByID", ctx, existing.ClientID).Return(existing, nil).Once()
	s.mockClients.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	newPhone := "555-0202"
	updated, err := s.service.UpdateClient(ctx, existing.ClientID, dto.UpdateClientRequest{Phone: &newPhone}, uuid.NewString())

	s.Require().NoError(err)
	s.Equal("555-0202", updated.Phone)
	s.Require().NotNil(updated.LocationID)
	s.Equal(locationID, *updated.LocationID)
	s.mockLocations.AssertNotCalled(s.T(), "ListLocations", mock.Anything, mock.Anything)
}

func (s *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	testID := uuid.NewString()
	s.mockClients.On("FindClientByID", ctx, testID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := s.service.GetClientByID(ctx, testID)

	s.Require().Error(err)
	s.Nil(client)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
