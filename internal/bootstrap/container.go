package bootstrap

import (
	"fmt"
	"log"
	"time"

	"workforce-bot-api/internal/config"
	"workforce-bot-api/internal/controller"
	"workforce-bot-api/internal/pkg/logger"
	"workforce-bot-api/internal/pkg/ratelimit"
	"workforce-bot-api/internal/repository/unitofwork"
	"workforce-bot-api/internal/service"
	"workforce-bot-api/pkg/events"
	"workforce-bot-api/pkg/payroll"

	pktNats "workforce-bot-api/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	TelegramController     controller.ITelegramController
	ConversationController controller.IConversationController
	SystemController       controller.ISystemController

	// Infrastructure (closed by Close)
	Logger      logger.ILogger
	RateLimiter ratelimit.Limiter
	Publisher   events.Publisher

	closers []func() error
}

// NewContainer wires every dependency once at start-up. db may be nil when no
// database is configured; data endpoints then answer with a store error.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	return newContainer(db, cfg, sysLogger)
}

func newContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) (*Container, error) {
	c := &Container{Logger: sysLogger}

	// 1. Core Facades
	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("resolve APP_TIMEZONE: %w", err)
	}

	mapping, err := cfg.WorkerTypeMapping(payroll.WorkerTypeDayRate)
	if err != nil {
		return nil, fmt.Errorf("load worker types: %w", err)
	}
	classifier, err := payroll.NewClassifier(mapping)
	if err != nil {
		return nil, fmt.Errorf("load worker types: %w", err)
	}
	sysLogger.Info("BOOTSTRAP", "Worker classification loaded", map[string]interface{}{
		"day_rate_usernames": classifier.Size(),
		"source":             cfg.Payroll.WorkerTypesFile,
	})

	// 2. Infrastructure
	c.Publisher = events.NopPublisher{}
	if cfg.Events.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Events.NatsURL, cfg.Events.Subject)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			c.Publisher = natsPub
		}
	}

	if cfg.RateLimit.RedisURL != "" {
		limiter, err := ratelimit.NewRedisFixedWindowLimiter(
			cfg.RateLimit.RedisURL,
			cfg.RateLimit.Prefix,
			cfg.RateLimit.Limit,
			cfg.RateLimit.Window,
			sysLogger,
		)
		if err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		c.RateLimiter = limiter
		c.closers = append(c.closers, limiter.Close)
	}

	// 3. Services
	clock := service.Clock(time.Now)
	timeout := cfg.Database.QueryTimeout

	contractorService := service.NewContractorService(uowFactory, classifier, timeout, sysLogger)
	hoursService := service.NewHoursService(uowFactory, timeout, clock, location, sysLogger)
	paymentService := service.NewPaymentService(uowFactory, timeout, clock, location, sysLogger)
	jobService := service.NewJobService(uowFactory, timeout, sysLogger)
	conversationService := service.NewConversationService(uowFactory, timeout, c.Publisher, sysLogger)
	systemService := service.NewSystemService(db, cfg.App.ServiceName, timeout)

	// 4. Controllers
	c.TelegramController = controller.NewTelegramController(contractorService, hoursService, paymentService, jobService)
	c.ConversationController = controller.NewConversationController(conversationService)
	c.SystemController = controller.NewSystemController(systemService)

	return c, nil
}

// Close releases the bus connection and the rate limiter client, then flushes
// the logger.
func (c *Container) Close() {
	c.Publisher.Close()
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.Logger.Warn("BOOTSTRAP", "Failed to close resource", map[string]interface{}{"error": err.Error()})
		}
	}
	_ = c.Logger.Sync()
}
