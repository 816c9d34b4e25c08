package postgres_test

import (
	"context"
	"testing"
	"time"

	"autoparts/internal/adapters/out/postgres"
	"autoparts/internal/adapters/out/postgres/customerrepo"
	"autoparts/internal/adapters/out/postgres/messagerepo"
	"autoparts/internal/adapters/out/postgres/orderrepo"
	"autoparts/internal/core/domain/model/customer"
	"autoparts/internal/core/domain/model/kernel"
	"autoparts/internal/core/domain/model/message"
	"autoparts/internal/core/domain/model/order"
	"autoparts/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that repositories created by one
// unit of work share a transaction: everything commits together or not at all.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&customerrepo.CustomerDTO{},
		&messagerepo.MessageDTO{},
	))
	suite.Require().NoError(db.Exec("CREATE SEQUENCE IF NOT EXISTS sale_numbers").Error)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, customers, messages CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newConversation() (*customer.Customer, *message.Message) {
	phone, err := kernel.NewPhone("+5215512345678")
	suite.Require().NoError(err)

	sender, err := customer.NewCustomer(kernel.NewUUID(), phone, "Juan Perez")
	suite.Require().NoError(err)

	inbound, err := message.NewInbound(kernel.NewUUID(), sender.ID(), phone, "precio balatas", "SM1")
	suite.Require().NoError(err)

	return sender, inbound
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	sender, inbound := suite.newConversation()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	persisted, err := uow.CustomerRepository().Upsert(ctx, sender)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MessageRepository().Add(ctx, inbound))

	item, err := order.NewLineItem("BRK-PAD-TOY", 2, decimal.NewFromInt(450))
	suite.Require().NoError(err)

	orderRepo := uow.OrderRepository()
	saleNumber, err := orderRepo.NextSaleNumber(ctx)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), saleNumber, persisted.ID(), []order.LineItem{item}, "",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(orderRepo.Add(ctx, aggregate))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	loadedCustomer, err := verify.CustomerRepository().GetByPhone(ctx, sender.Phone())
	suite.Require().NoError(err)
	suite.True(loadedCustomer.IsEqual(persisted))

	loadedOrder, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loadedOrder.IsEqual(aggregate))

	conversation, err := verify.MessageRepository().GetConversation(ctx, persisted.ID(), 10)
	suite.Require().NoError(err)
	suite.Len(conversation, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsEverything() {
	ctx := context.Background()

	sender, inbound := suite.newConversation()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	_, err := uow.CustomerRepository().Upsert(ctx, sender)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.MessageRepository().Add(ctx, inbound))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err = verify.CustomerRepository().GetByPhone(ctx, sender.Phone())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
