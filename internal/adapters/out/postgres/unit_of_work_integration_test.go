package postgres_test

import (
	"context"
	"testing"
	"time"

	"deliverytrack/internal/adapters/out/postgres"
	"deliverytrack/internal/adapters/out/postgres/deliveryrepo"
	"deliverytrack/internal/core/domain/model/delivery"
	"deliverytrack/internal/core/domain/model/kernel"
	"deliverytrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tc_postgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tc_postgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tc_postgres.Run(ctx,
		"postgres:15-alpine",
		tc_postgres.WithDatabase("testdb"),
		tc_postgres.WithUsername("testuser"),
		tc_postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&deliveryrepo.DeliveryDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkTestSuite) newDelivery() *delivery.Delivery {
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), nil,
		"12 Rue de la Paix, Paris", "34 Avenue Victor Hugo, Paris", "")
	suite.Require().NoError(err)
	return d
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	d := suite.newDelivery()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().DeliveryRepository().Get(ctx, d.ID())
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(d.ID()))
}

func (suite *UnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	d := suite.newDelivery()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().DeliveryRepository().Get(ctx, d.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkTestSuite) TestRepositoryWithoutBegin_ReadsDirectly() {
	ctx := context.Background()

	setup := suite.factory.Create()
	d := suite.newDelivery()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.DeliveryRepository().Add(ctx, d))
	suite.Require().NoError(setup.Commit(ctx))

	// No Begin: the repository serves the duplicate-order pre-check untransacted.
	uow := suite.factory.Create()
	exists, err := uow.DeliveryRepository().ExistsByOrderID(ctx, d.OrderID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
