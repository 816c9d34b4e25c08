package cmd

import (
	"log/slog"

	"autoparts/internal/adapters/out/payment"
	"autoparts/internal/adapters/out/postgres"
	"autoparts/internal/adapters/out/whatsapp"
	"autoparts/internal/core/application/usecases/commands"
	"autoparts/internal/core/application/usecases/queries"
	"autoparts/internal/core/domain/services"
	"autoparts/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    *payment.SimulatedGateway
	messenger  *whatsapp.StubMessenger
	replyGen   whatsapp.KeywordReplyGenerator
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    payment.NewSimulatedGateway(cfg.CheckoutBaseURL, logger),
		messenger:  whatsapp.NewStubMessenger(logger),
		replyGen:   whatsapp.NewKeywordReplyGenerator(),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentLinkCommandHandler() commands.CreatePaymentLinkCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentLinkCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderFulfilledCommandHandler() commands.MarkOrderFulfilledCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderFulfilledCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessIncomingMessageCommandHandler() commands.ProcessIncomingMessageCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessIncomingMessageCommandHandler(f, c.messenger, c.replyGen)
}

func (c *CompositionRoot) CreateGetSalesFunnelQueryHandler() queries.GetSalesFunnelQueryHandler {
	return queries.NewGetSalesFunnelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickListQueryHandler() queries.GetPickListQueryHandler {
	return queries.NewGetPickListQueryHandler(
		c.uowFactory.Create().OrderRepository(),
		services.NewFulfillmentProjector(),
	)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConversationQueryHandler() queries.GetConversationQueryHandler {
	return queries.NewGetConversationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return jobs.NewJobManager(f, c.gateway, c.CreateConfirmPaymentCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
