package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/restaurant-order-bot/docs"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/app"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/classifier"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/config"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/entities"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/handler"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/notifier"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/postgres"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/publisher"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/registry"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/repo"
	"github.com/SergeyBogomolovv/restaurant-order-bot/internal/service"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/cache"
	"github.com/SergeyBogomolovv/restaurant-order-bot/pkg/trm"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

// размер окна защиты от повторных нажатий
const debounceCapacity = 10_000

// @title           Restaurant Order Bot API
// @version         1.0
// @description     Открытые заказы, журнал заказов и статистика ресторана
func main() {
	conf, err := config.New()
	panicIfErr("failed to load config", err)
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db, sql.LevelReadCommitted)

	bot, err := tgbotapi.NewBotAPI(conf.Telegram.Token)
	panicIfErr("failed to create telegram bot", err)
	logger.Info("telegram authorized", slog.String("bot", bot.Self.UserName))

	tgNotifier := notifier.NewTelegramNotifier(logger, bot, notifier.Chats{
		Staff:      conf.Telegram.CashierID,
		Public:     conf.Telegram.ChannelID,
		Escalation: conf.Telegram.ComplaintsChannelID,
	})

	events := newPublisher(logger, conf.Kafka)

	orders := registry.New()
	orderLogCache := cache.NewLRUCache[entities.OrderLogEntry](conf.Cache.Capacity, conf.Cache.TTL)
	debounce := cache.NewLRUCache[struct{}](debounceCapacity, conf.Telegram.CallbackDebounce)

	orderService := service.NewOrderService(logger, orders, tgNotifier, pgRepo, events)
	statsService := service.NewStatsService(logger, pgRepo, orderLogCache)
	rosterService := service.NewRosterService(logger, txManager, pgRepo)

	adminHandler := handler.NewAdminHandler(logger, tgNotifier, statsService, rosterService, conf.Telegram.Restaurant)
	telegramHandler := handler.NewTelegramHandler(
		logger, conf.Telegram, bot,
		classifier.New(), orderService, tgNotifier, debounce, adminHandler,
	)
	httpHandler := handler.NewHTTPHandler(logger, orderService, statsService)
	handler.RegisterMetrics(orders.Len)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(telegramHandler)
	app.SetStarters(orderLogCache, debounce)
	app.SetClosers(events)

	panicIfErr("failed to start app", app.Start(ctx))
	select {
	case <-ctx.Done():
	case <-app.Done():
		logger.Error("application terminated unexpectedly")
	}
	panicIfErr("failed to stop app", app.Stop())
}

type eventPublisher interface {
	service.EventPublisher
	Close() error
}

// newPublisher отключает публикацию событий, если брокеры не заданы
func newPublisher(logger *slog.Logger, cfg config.Kafka) eventPublisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("kafka brokers not configured, lifecycle events disabled")
		return publisher.NewNoop()
	}
	return publisher.NewKafkaPublisher(logger, cfg)
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
