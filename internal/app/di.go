package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	tgclient "github.com/you-humble/garage-ops/internal/client/http/telegram"
	"github.com/you-humble/garage-ops/internal/config"
	envconfig "github.com/you-humble/garage-ops/internal/config/env"
	kafkaconv "github.com/you-humble/garage-ops/internal/converter/kafka"
	tgconv "github.com/you-humble/garage-ops/internal/converter/telegram"
	xlsxconv "github.com/you-humble/garage-ops/internal/converter/xlsx"
	"github.com/you-humble/garage-ops/internal/model"
	aptmongo "github.com/you-humble/garage-ops/internal/repository/appointment/mongo"
	aptpostgres "github.com/you-humble/garage-ops/internal/repository/appointment/postgres"
	partrepo "github.com/you-humble/garage-ops/internal/repository/part"
	porepo "github.com/you-humble/garage-ops/internal/repository/purchaseorder"
	quorepo "github.com/you-humble/garage-ops/internal/repository/quotation"
	suprepo "github.com/you-humble/garage-ops/internal/repository/supplier"
	aptsvc "github.com/you-humble/garage-ops/internal/service/appointment"
	evconsumer "github.com/you-humble/garage-ops/internal/service/consumer/event"
	partsvc "github.com/you-humble/garage-ops/internal/service/part"
	evproducer "github.com/you-humble/garage-ops/internal/service/producer/event"
	posvc "github.com/you-humble/garage-ops/internal/service/purchaseorder"
	quosvc "github.com/you-humble/garage-ops/internal/service/quotation"
	supsvc "github.com/you-humble/garage-ops/internal/service/supplier"
	tgsvc "github.com/you-humble/garage-ops/internal/service/telegram"
	aptv1 "github.com/you-humble/garage-ops/internal/transport/http/appointment/v1"
	partv1 "github.com/you-humble/garage-ops/internal/transport/http/part/v1"
	pov1 "github.com/you-humble/garage-ops/internal/transport/http/purchaseorder/v1"
	quov1 "github.com/you-humble/garage-ops/internal/transport/http/quotation/v1"
	supv1 "github.com/you-humble/garage-ops/internal/transport/http/supplier/v1"
	"github.com/you-humble/garage-ops/platform/closer"
	"github.com/you-humble/garage-ops/platform/db/migrator"
	"github.com/you-humble/garage-ops/platform/kafka"
	"github.com/you-humble/garage-ops/platform/kafka/consumer"
	"github.com/you-humble/garage-ops/platform/kafka/middleware"
	"github.com/you-humble/garage-ops/platform/kafka/producer"
	"github.com/you-humble/garage-ops/platform/logger"
)

type Handler interface {
	Register(r chi.Router)
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type SupplierRepository interface {
	supsvc.SupplierRepository
	posvc.SupplierReader
}

type Converter interface {
	evproducer.Converter
	evconsumer.Converter
}

type Exporter interface {
	partsvc.PartsExporter
	aptsvc.AppointmentsExporter
}

type TelegramService interface {
	evconsumer.Notifier
	AddChatID(ctx context.Context, chatID int64)
}

type EventConsumer interface {
	RunEventsConsume(ctx context.Context) error
}

type di struct {
	mongo *mongo.Client

	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	partRepository          partsvc.PartRepository
	supplierRepository      SupplierRepository
	purchaseOrderRepository posvc.PurchaseOrderRepository
	quotationRepository     quosvc.QuotationRepository
	appointmentRepository   aptsvc.AppointmentRepository

	conv     Converter
	exporter Exporter

	syncProducer   sarama.SyncProducer
	eventsProducer kafka.Producer
	publisher      EventPublisher

	consumerGroup       sarama.ConsumerGroup
	eventsKafkaConsumer kafka.Consumer
	eventConsumer       EventConsumer

	tgBot     *bot.Bot
	tgService TelegramService

	partService          partv1.PartService
	supplierService      supv1.SupplierService
	purchaseOrderService pov1.PurchaseOrderService
	quotationService     quov1.QuotationService
	appointmentService   aptv1.AppointmentService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) MongoDB(ctx context.Context) *mongo.Client {
	if d.mongo == nil {
		cfg := config.C()

		mongoClient, err := mongo.Connect(
			options.Client().ApplyURI(cfg.Mongo.DSN()),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create mongodb client: %v\n", err))
		}
		closer.AddNamed("Mongo Client",
			func(ctx context.Context) error {
				return mongoClient.Disconnect(ctx)
			})

		if err := mongoClient.Ping(ctx, readpref.Primary()); err != nil {
			panic(fmt.Sprintf("failed to ping database: %v\n", err))
		}

		d.mongo = mongoClient
	}

	return d.mongo
}

func (d *di) collection(
	ctx context.Context,
	name string,
	ensure func(context.Context, *mongo.Collection) error,
) *mongo.Collection {
	coll := d.MongoDB(ctx).
		Database(config.C().Mongo.DatabaseName()).
		Collection(name)

	if err := ensure(ctx, coll); err != nil {
		panic(fmt.Sprintf("failed to ensure %s indexes: %v\n", name, err))
	}

	return coll
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewEmbeddedMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			aptpostgres.Migrations,
			aptpostgres.MigrationsDir,
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) PartRepository(ctx context.Context) partsvc.PartRepository {
	if d.partRepository == nil {
		d.partRepository = partrepo.NewPartRepository(
			d.collection(ctx, config.C().Mongo.PartsCollection(), partrepo.EnsureIndexes),
		)
	}

	return d.partRepository
}

func (d *di) SupplierRepository(ctx context.Context) SupplierRepository {
	if d.supplierRepository == nil {
		d.supplierRepository = suprepo.NewSupplierRepository(
			d.collection(ctx, config.C().Mongo.SuppliersCollection(), suprepo.EnsureIndexes),
		)
	}

	return d.supplierRepository
}

func (d *di) PurchaseOrderRepository(ctx context.Context) posvc.PurchaseOrderRepository {
	if d.purchaseOrderRepository == nil {
		d.purchaseOrderRepository = porepo.NewPurchaseOrderRepository(
			d.collection(ctx, config.C().Mongo.PurchaseOrdersCollection(), porepo.EnsureIndexes),
		)
	}

	return d.purchaseOrderRepository
}

func (d *di) QuotationRepository(ctx context.Context) quosvc.QuotationRepository {
	if d.quotationRepository == nil {
		d.quotationRepository = quorepo.NewQuotationRepository(
			d.collection(ctx, config.C().Mongo.QuotationsCollection(), quorepo.EnsureIndexes),
		)
	}

	return d.quotationRepository
}

// AppointmentRepository picks the backing store by APPOINTMENTS_STORE.
func (d *di) AppointmentRepository(ctx context.Context) aptsvc.AppointmentRepository {
	if d.appointmentRepository == nil {
		cfg := config.C()

		switch cfg.Features.AppointmentsStore() {
		case envconfig.StorePostgres:
			if err := d.Migrator(ctx).Up(); err != nil {
				panic(fmt.Sprintf("failed to apply migrations: %v\n", err))
			}
			d.appointmentRepository = aptpostgres.NewAppointmentRepository(d.DBPool(ctx))
		default:
			d.appointmentRepository = aptmongo.NewAppointmentRepository(
				d.collection(ctx, cfg.Mongo.AppointmentsCollection(), aptmongo.EnsureIndexes),
			)
		}
	}

	return d.appointmentRepository
}

func (d *di) KafkaConverter(ctx context.Context) Converter {
	if d.conv == nil {
		d.conv = kafkaconv.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) Exporter(ctx context.Context) Exporter {
	if d.exporter == nil {
		d.exporter = xlsxconv.NewXLSXConverter()
	}

	return d.exporter
}

func (d *di) SyncProducer(ctx context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.EventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) EventsProducer(ctx context.Context) kafka.Producer {
	if d.eventsProducer == nil {
		d.eventsProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.EventsTopic(),
			logger.L(),
		)
	}

	return d.eventsProducer
}

// EventPublisher falls back to dropping events when Kafka is disabled.
func (d *di) EventPublisher(ctx context.Context) EventPublisher {
	if d.publisher == nil {
		if !config.C().Features.KafkaEnabled() {
			d.publisher = evproducer.NewNoopProducer()
			return d.publisher
		}

		d.publisher = evproducer.NewEventProducer(
			d.EventsProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.publisher
}

func (d *di) ConsumerGroup(ctx context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ConsumerGroupID(),
			cfg.Kafka.EventsConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create events consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka events consumer group", func(ctx context.Context) error {
			return consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) EventsKafkaConsumer(ctx context.Context) kafka.Consumer {
	if d.eventsKafkaConsumer == nil {
		d.eventsKafkaConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.EventsTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.eventsKafkaConsumer
}

func (d *di) EventConsumer(ctx context.Context) EventConsumer {
	if d.eventConsumer == nil {
		d.eventConsumer = evconsumer.NewEventConsumer(
			d.EventsKafkaConsumer(ctx),
			d.KafkaConverter(ctx),
			d.TelegramService(ctx),
		)
	}

	return d.eventConsumer
}

func (d *di) TelegramBot(ctx context.Context) *bot.Bot {
	if d.tgBot == nil {
		b, err := bot.New(config.C().Telegram.BotToken())
		if err != nil {
			panic(fmt.Sprintf("failed to create telegram bot: %s\n", err.Error()))
		}
		closer.AddNamed("Telegram Bot", func(ctx context.Context) error {
			_, err := b.Close(ctx)
			return err
		})

		d.tgBot = b
	}

	return d.tgBot
}

func (d *di) TelegramService(ctx context.Context) TelegramService {
	if d.tgService == nil {
		d.tgService = tgsvc.NewTelegramService(
			tgclient.NewClient(d.TelegramBot(ctx)),
			tgconv.NewTelegramConverter(),
		)
	}

	return d.tgService
}

func (d *di) PartService(ctx context.Context) partv1.PartService {
	if d.partService == nil {
		cfg := config.C()
		d.partService = partsvc.NewPartService(
			d.PartRepository(ctx),
			d.EventPublisher(ctx),
			d.Exporter(ctx),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) SupplierService(ctx context.Context) supv1.SupplierService {
	if d.supplierService == nil {
		cfg := config.C()
		d.supplierService = supsvc.NewSupplierService(
			d.SupplierRepository(ctx),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.supplierService
}

func (d *di) PurchaseOrderService(ctx context.Context) pov1.PurchaseOrderService {
	if d.purchaseOrderService == nil {
		cfg := config.C()
		d.purchaseOrderService = posvc.NewPurchaseOrderService(
			d.PurchaseOrderRepository(ctx),
			d.SupplierRepository(ctx),
			d.EventPublisher(ctx),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.purchaseOrderService
}

func (d *di) QuotationService(ctx context.Context) quov1.QuotationService {
	if d.quotationService == nil {
		cfg := config.C()
		d.quotationService = quosvc.NewQuotationService(
			d.QuotationRepository(ctx),
			d.SupplierRepository(ctx),
			d.EventPublisher(ctx),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.quotationService
}

func (d *di) AppointmentService(ctx context.Context) aptv1.AppointmentService {
	if d.appointmentService == nil {
		cfg := config.C()
		d.appointmentService = aptsvc.NewAppointmentService(
			d.AppointmentRepository(ctx),
			d.EventPublisher(ctx),
			d.Exporter(ctx),
			cfg.Server.DBReadTimeout(),
			cfg.Server.DBWriteTimeout(),
		)
	}

	return d.appointmentService
}

// Handlers maps each API prefix to its handler.
func (d *di) Handlers(ctx context.Context) map[string]Handler {
	return map[string]Handler{
		"/api/parts":           partv1.NewPartHandler(d.PartService(ctx)),
		"/api/suppliers":       supv1.NewSupplierHandler(d.SupplierService(ctx)),
		"/api/purchase-orders": pov1.NewPurchaseOrderHandler(d.PurchaseOrderService(ctx)),
		"/api/quotations":      quov1.NewQuotationHandler(d.QuotationService(ctx)),
		"/api/appointments":    aptv1.NewAppointmentHandler(d.AppointmentService(ctx)),
	}
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
