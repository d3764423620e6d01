package bootstrap

import (
	"context"
	"log"
	"time"

	"arogya-chat-be/internal/config"
	"arogya-chat-be/internal/controller"
	"arogya-chat-be/internal/pkg/logger"
	"arogya-chat-be/internal/pkg/mailer"
	"arogya-chat-be/internal/repository/memory"
	"arogya-chat-be/internal/repository/unitofwork"
	"arogya-chat-be/internal/service"

	pkgNats "arogya-chat-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	HealthController  controller.IHealthController
	ContactController controller.IContactController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService
	RepairService   service.IRepairService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		cfg.SMTP.ContactInbox,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	exchangeCache := memory.NewExchangeCache(time.Duration(cfg.Chat.DedupWindowSeconds) * time.Second)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Chat.ActivityTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Chat.ActivityTopic, natsPub, sysLogger)

	usageService := service.NewUsageService(rdb, cfg.Chat.DailyMessageLimit, sysLogger)

	chatService := service.NewChatService(
		uowFactory,
		exchangeCache,
		usageService,
		publisherService,
		sysLogger,
	)

	contactService := service.NewContactService(emailService, sysLogger)
	healthService := service.NewHealthService(db, rdb, natsPub)
	repairService := service.NewRepairService(uowFactory, sysLogger)

	// 4. Controllers
	return &Container{
		ChatController:    controller.NewChatController(chatService),
		HealthController:  controller.NewHealthController(healthService),
		ContactController: controller.NewContactController(contactService),

		ConsumerService: consumerService,
		RepairService:   repairService,

		Logger: sysLogger,
	}
}
