package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecom/internal/config"
	"ecom/internal/handler"
	"ecom/internal/infra/cache"
	"ecom/internal/infra/db"
	"ecom/internal/infra/idgen"
	infraRepo "ecom/internal/infra/repository"
	"ecom/internal/logging"
	"ecom/internal/server"
	"ecom/internal/telemetry"
	"ecom/internal/usecase"
	auth "ecom/internal/usecase/auth_usecase"
	"ecom/internal/validator"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const usage = `usage: api [command]

commands:
  start   run the HTTP server (default)
  setup   create the database schema and exit
  help    show this message
`

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	cmd := "start"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "start", "setup":
	case "help", "-h", "--help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.GoEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Zap().Fatal("database connection failed", zap.Error(err))
	}
	defer func() { _ = db.Close(gormDB) }()

	if cmd == "setup" {
		if err := db.Migrate(gormDB); err != nil {
			log.Zap().Fatal("schema creation failed", zap.Error(err))
		}
		log.Success("database schema created")
		return
	}

	if err := run(cfg, log, gormDB); err != nil {
		log.Zap().Fatal("server exited", zap.Error(err))
	}
}

func run(cfg config.Config, log *logging.Logger, gormDB *gorm.DB) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Init(ctx, cfg)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(sctx); err != nil {
			log.Warning("telemetry shutdown failed", zap.Error(err))
		}
	}()

	flushSentry, err := telemetry.InitSentry(cfg)
	if err != nil {
		return fmt.Errorf("sentry: %w", err)
	}
	defer flushSentry()

	//Repository（GORM実装）生成
	businessRepo := infraRepo.NewBusinessGormRepository(gormDB)
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	orderDetailRepo := infraRepo.NewOrderDetailGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	idGen := idgen.New()
	clock := &realClock{}
	inputValidator := validator.NewInputValidator()

	//bcrypt（登録・更新：Hash / Basic認証：Verify）
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()

	//OIDC userinfo（REDIS_ADDRがあればキャッシュ）
	var idp auth.IdentityProvider = auth.NewOIDCClient(cfg.OIDCUserinfoURL, cfg.OIDCTimeout)
	if cfg.RedisAddr != "" {
		userInfoCache := cache.NewRedisUserInfoCache(cache.NewRedisClient(cfg))
		defer func() { _ = userInfoCache.Close() }()

		if err := userInfoCache.Ping(ctx); err != nil {
			log.Warning("redis unavailable, userinfo cache disabled", zap.Error(err))
		} else {
			idp = auth.NewCachedIdentityProvider(idp, userInfoCache, cfg.UserinfoCacheTTL, clock, log)
			log.General("userinfo cache enabled", zap.String("addr", cfg.RedisAddr))
		}
	}

	authn := auth.NewAuthenticator(businessRepo, customerRepo, verifier, idp, idGen, clock, cfg.OIDCProvider, log)

	//Usecase生成
	businessUC := usecase.NewBusinessUsecase(businessRepo, inputValidator, hasher, idGen, clock, log)
	customerUC := usecase.NewCustomerUsecase(customerRepo, inputValidator, hasher, idGen, clock, log)
	productUC := usecase.NewProductUsecase(productRepo, inputValidator, idGen, clock, log)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo, orderDetailRepo, inputValidator, idGen, clock, log)

	//Handler生成
	handlers := server.Handlers{
		Root: handler.NewRootHandler(func(ctx context.Context) error {
			return db.Ping(ctx, gormDB)
		}, log),
		Business: handler.NewBusinessHandler(businessUC),
		Customer: handler.NewCustomerHandler(customerUC),
		Product:  handler.NewProductHandler(productUC),
		Order:    handler.NewOrderHandler(orderUC),
	}

	e := server.New(log)
	server.RegisterRoutes(e, handlers, authn, cfg.InternalAPIKey)

	//Server起動
	return server.Start(ctx, e, cfg.Addr(), log)
}
