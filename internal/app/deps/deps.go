package deps

import (
	"context"
	"sync"
	"time"

	"nutritrack/internal/config"
	dl "nutritrack/internal/core/domain/logging"
	"nutritrack/internal/core/domain/notification"
	"nutritrack/internal/core/domain/nutrition"
	drl "nutritrack/internal/core/domain/rate_limiter"
	"nutritrack/internal/core/domain/reminder"
	dbdelivery "nutritrack/internal/db/delivery"
	"nutritrack/internal/implementations/logging"
	"nutritrack/internal/implementations/notifier"
	nutritionapi "nutritrack/internal/implementations/nutrition_api"
	permissionhost "nutritrack/internal/implementations/permission_host"
	ratelimiter "nutritrack/internal/implementations/rate_limiter"
	reminderscheduler "nutritrack/internal/implementations/reminder_scheduler"
	settingsstore "nutritrack/internal/implementations/settings_store"
	"nutritrack/internal/rabbitmq"
	reminderfired "nutritrack/internal/rabbitmq/publishers/reminder_fired"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Location       *time.Location
	Now            func() time.Time
	DailySummaryAt reminder.TimeOfDay

	SettingsRepository reminder.SettingsRepository
	DeliveryRepository reminder.DeliveryRepository
	PermissionHost     notification.PermissionHost

	RateLimiter   drl.RateLimiter
	SummaryClient nutrition.SummaryClient

	Scheduler reminder.Scheduler
	Notifier  notification.Notifier
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	deps.initClock()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	sseNotifier := notifier.NewSSE(deps.SseServer, deps.Config.NotificationsStream)

	deps.SettingsRepository = settingsstore.NewRedis(deps.Redis, deps.Config.SettingsKey)
	deps.PermissionHost = permissionhost.NewRedis(deps.Logger, deps.Redis, sseNotifier, deps.Config.SettingsKey)
	deps.DeliveryRepository = dbdelivery.NewPgxDeliveryRepository(deps.DB)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now, deps.Config.SettingsKey)
	deps.SummaryClient = nutritionapi.New(deps.Config.NutritionAPIBaseURL, deps.Config.NutritionAPITimeout)
	deps.Scheduler = reminderscheduler.New(deps.Logger, reminderscheduler.NewSystemClock(deps.Location))

	closeReminderFired := deps.initNotifier(sseNotifier)

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeReminderFired,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
		closeLogger()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initClock() {
	loc, err := deps.Config.Location()
	if err != nil {
		panic(err)
	}
	dailySummaryAt, err := reminder.ParseTimeOfDay(deps.Config.DailySummaryTime)
	if err != nil {
		deps.Logger.Error(context.Background(), "Invalid daily summary time.", dl.Entry("err", err))
		panic(err)
	}
	deps.Location = loc
	deps.Now = func() time.Time { return time.Now().In(loc) }
	deps.DailySummaryAt = dailySummaryAt
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	deps.SseServer.AutoStream = true
	deps.SseServer.AutoReplay = false
	deps.SseServer.CreateStream(deps.Config.NotificationsStream)
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initNotifier(sseNotifier *notifier.SSE) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}
	if err := rabbitmqChannel.DeclareTopicExchange(deps.Config.RabbitmqRemindersExchange); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	composite := notifier.NewComposite(deps.Logger).
		With("sse", sseNotifier).
		With("amqp", reminderfired.NewRabbitMQ(deps.Logger, rabbitmqChannel, deps.Config.RabbitmqRemindersExchange))

	if deps.Config.IsSummaryEmailEnabled() {
		composite = composite.With("email", notifier.NewSummaryEmail(
			deps.AwsConfig,
			deps.Config.AwsEmailSender,
			deps.Config.SummaryEmailRecipient,
			deps.Config.AwsEmailReminderTemplate,
		))
		deps.Logger.Info(context.Background(), "Summary email is enabled.")
	} else {
		deps.Logger.Info(context.Background(), "Summary email is disabled.")
	}
	deps.Notifier = composite

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reminder publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reminder publisher shut down.")
	}
}
