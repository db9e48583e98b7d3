package partnerrepo_test

import (
	"context"
	"testing"
	"time"

	"freshcart/internal/adapters/out/postgres/partnerrepo"
	"freshcart/internal/core/domain/model/kernel"
	"freshcart/internal/core/domain/model/partner"
	"freshcart/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PartnerRepositoryIntegrationTestSuite provides integration tests for
// PartnerRepository, covering the assignment history, the unique phone and
// user-link indexes, and the compare-and-set update discipline.
type PartnerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *partnerrepo.GormPartnerRepository
	tracker    *MockAggregateTracker
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&partnerrepo.PartnerDTO{}, &partnerrepo.AssignmentDTO{}))
}

func (suite *PartnerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE delivery_partners, partner_assignments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = partnerrepo.NewGormPartnerRepository(suite.db, suite.tracker)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PartnerRepositoryIntegrationTestSuite) createTestPartner(phone string) *partner.DeliveryPartner {
	p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Sam Rivera", phone, "bike")
	suite.Require().NoError(err)
	return p
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	courier := suite.createTestPartner("+15550100")
	suite.Require().NoError(suite.repository.Add(ctx, courier))

	retrieved, err := suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)
	suite.Equal(courier.ID(), retrieved.ID())
	suite.Equal("Sam Rivera", retrieved.Name())
	suite.Equal("+15550100", retrieved.Phone())
	suite.Equal("bike", retrieved.VehicleType())
	suite.Nil(retrieved.LinkedUser())
	suite.Empty(retrieved.AssignedOrders())
	suite.Equal(int64(1), retrieved.Version())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGet_NonExistentPartner_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestAdd_DuplicatePhone_ReturnsDuplicatePhoneError() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestPartner("+15550100")))

	err := suite.repository.Add(ctx, suite.createTestPartner("+15550100"))
	suite.Require().Error(err)
	suite.ErrorIs(err, partner.ErrDuplicatePhone)

	var duplicateErr *partner.DuplicatePhoneError
	suite.Require().ErrorAs(err, &duplicateErr)
	suite.Equal("+15550100", duplicateErr.Phone)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_AppendsAssignmentHistoryInOrder() {
	ctx := context.Background()
	courier := suite.createTestPartner("+15550100")
	suite.Require().NoError(suite.repository.Add(ctx, courier))

	firstOrder := kernel.NewUUID()
	secondOrder := kernel.NewUUID()

	loaded, err := suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RecordAssignment(firstOrder))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	loaded, err = suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RecordAssignment(secondOrder))
	// Re-assignment of the same order appends again; history keeps duplicates.
	suite.Require().NoError(loaded.RecordAssignment(firstOrder))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{firstOrder, secondOrder, firstOrder}, retrieved.AssignedOrders())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_PersistsUserLink() {
	ctx := context.Background()
	courier := suite.createTestPartner("+15550100")
	suite.Require().NoError(suite.repository.Add(ctx, courier))

	userID := kernel.NewUUID()
	suite.Require().NoError(courier.LinkUser(userID))
	suite.Require().NoError(suite.repository.Update(ctx, courier))

	retrieved, err := suite.repository.GetByLinkedUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(courier.ID(), retrieved.ID())
	suite.Require().NotNil(retrieved.LinkedUser())
	suite.Equal(userID, *retrieved.LinkedUser())
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_UserLinkCollision_ReturnsAlreadyLinkedError() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	first := suite.createTestPartner("+15550100")
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(first.LinkUser(userID))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	second := suite.createTestPartner("+15550101")
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(second.LinkUser(userID))
	err := suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, partner.ErrAlreadyLinked)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestGetByLinkedUser_NoLink_ReturnsNotFoundError() {
	retrieved, err := suite.repository.GetByLinkedUser(context.Background(), kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PartnerRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConcurrentModificationError() {
	ctx := context.Background()
	courier := suite.createTestPartner("+15550100")
	suite.Require().NoError(suite.repository.Add(ctx, courier))

	firstCopy, err := suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, courier.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.LinkUser(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	suite.Require().NoError(secondCopy.RecordAssignment(kernel.NewUUID()))
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrentModification)
}

func TestPartnerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PartnerRepositoryIntegrationTestSuite))
}
