package cmd

import (
	"database/sql"
	"log/slog"

	httpin "freshcart/internal/adapters/in/http"
	"freshcart/internal/adapters/out/postgres"
	"freshcart/internal/adapters/out/postgres/catalogrepo"
	"freshcart/internal/adapters/out/redis/cartstore"
	"freshcart/internal/core/application/usecases/commands"
	"freshcart/internal/core/application/usecases/queries"
	"freshcart/internal/core/domain/services"
	"freshcart/internal/core/ports"
	"freshcart/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	readDB     *sql.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cartStore  ports.CartStore
	catalog    ports.CatalogLookup
	policy     services.TransitionPolicy
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, readDB *sql.DB, redisClient *redis.Client) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		readDB:     readDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartstore.NewRedisCartStore(redisClient),
		catalog:    catalogrepo.NewGormCatalogLookup(gormDB),
		policy:     services.NewTransitionPolicy(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.cartStore, c.catalog)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateForceSetStatusCommandHandler() commands.ForceSetStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewForceSetStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.policy)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateLinkUserToPartnerCommandHandler() commands.LinkUserToPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLinkUserToPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetVendorOrdersQueryHandler() queries.GetVendorOrdersQueryHandler {
	return queries.NewGetVendorOrdersQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.readDB)
}

func (c *CompositionRoot) CreateGetAssignedOrdersQueryHandler() queries.GetAssignedOrdersQueryHandler {
	return queries.NewGetAssignedOrdersQueryHandler(c.readDB)
}

// CreateHTTPServer wires every command and query handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateForceSetStatusCommandHandler(),
		c.CreateAssignPartnerCommandHandler(),
		c.CreateCreatePartnerCommandHandler(),
		c.CreateLinkUserToPartnerCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetCustomerOrdersQueryHandler(),
		c.CreateGetVendorOrdersQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetAssignedOrdersQueryHandler(),
	)
}

// CreateAuthenticator builds the bearer-token middleware. The partner
// repository runs outside any transaction; a unit of work without Begin
// reads against the base connection.
func (c *CompositionRoot) CreateAuthenticator() *httpin.Authenticator {
	parser := httpin.NewTokenParser(c.config.JWTSecret)
	return httpin.NewAuthenticator(parser, c.uowFactory.Create().PartnerRepository())
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStaleOrdersCommandHandler(),
		c.config.StaleOrderMaxAge,
		c.config.StaleSweepCron,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
