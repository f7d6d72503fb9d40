package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/storefront/internal/cfg"
	v1Grpc "github.com/DRSN-tech/storefront/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/storefront/internal/infrastructure/gemini"
	"github.com/DRSN-tech/storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/storefront/internal/infrastructure/minio"
	s3Repo "github.com/DRSN-tech/storefront/internal/repository/minio"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb"
	"github.com/DRSN-tech/storefront/internal/repository/redis"
	"github.com/DRSN-tech/storefront/internal/store"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/closer"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// App — корень композиции: бэкенды, use case'ы и оба сервера.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp подключает опциональные бэкенды. Недоступный бэкенд не мешает старту:
// витрина работает на встроенном каталоге и без публикации событий.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(0, log),
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	var productRepo usecase.ProductRepository
	if db := a.initPGDB(ctx); db != nil {
		productRepo = pgdb.NewProductRepo(db.Pool)
	}

	var cacheRepo usecase.CacheRepository
	if redisClient := a.initRedis(ctx); redisClient != nil {
		cacheRepo = redis.NewCacheRepo(redisClient, cfg.Redis, log)
	}

	var publisher usecase.CheckoutPublisher
	if producer := a.initKafka(); producer != nil {
		publisher = producer
	}

	var images usecase.ImagesInfra
	if imageRepo := a.initMinio(ctx); imageRepo != nil {
		images = minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log)
	}

	cat, err := usecase.NewCatalogUC(productRepo, cacheRepo, log).LoadCatalog(ctx)
	if err != nil {
		_ = a.closer.Close(context.Background())
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	st := store.New(cat)
	assistantUC := usecase.NewAssistantUC(gemini.NewClient(cfg.Gemini, log), cfg.Gemini, cfg.Store, cat, log)
	storefrontUC := usecase.NewStorefrontUC(st, assistantUC, publisher, images, log)
	a.closer.Add("assistant", storefrontUC.Wait)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.closer.Add("gRPC server", a.grpcSrv.Stop)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(storefrontUC)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("HTTP server", a.httpSrv.Stop)

	return a, nil
}

// Run запускает серверы и блокируется до сигнала или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 2)

	go func() {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()

	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown error")
		if appErr == nil {
			appErr = err
		}
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func (a *App) initPGDB(ctx context.Context) *postgres.PgDatabase {
	if a.cfg.Db == nil {
		a.logger.Infof("POSTGRES_DB is not set, database disabled")
		return nil
	}

	db, err := postgres.Connect(ctx, a.cfg.Db)
	if err != nil {
		a.logger.Warnf("database unavailable: %v", err)
		return nil
	}
	a.closer.Add("postgres", db.Close)

	if err := db.RunMigrations(a.logger); err != nil {
		a.logger.Warnf("failed to run migrations, database disabled: %v", err)
		return nil
	}

	return db
}

func (a *App) initRedis(ctx context.Context) *clients.RedisClient {
	if a.cfg.Redis == nil {
		a.logger.Infof("REDIS_ADDR is not set, catalog cache disabled")
		return nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", redisClient.Close)

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Warnf("redis unavailable, catalog cache disabled: %v", err)
		return nil
	}

	return redisClient
}

func (a *App) initKafka() *kafka.Producer {
	if a.cfg.Kafka == nil {
		a.logger.Infof("KAFKA_BROKERS is not set, checkout events are only logged")
		return nil
	}

	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", producer.Close)

	if err := producer.EnsureTopic(initTimeout); err != nil {
		a.logger.Warnf("failed to ensure kafka topic %s: %v", a.cfg.Kafka.Topic, err)
	}

	return producer
}

func (a *App) initMinio(ctx context.Context) *s3Repo.ImageRepo {
	if a.cfg.Minio == nil {
		a.logger.Infof("MINIO_ENDPOINT is not set, image refs are served as is")
		return nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Warnf("failed to initialize minio client: %v", err)
		return nil
	}

	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Warnf("failed to initialize MinIO bucket: %v", err)
		return nil
	}

	return s3Repo.NewImageRepo(minioClient, a.cfg.Minio)
}
