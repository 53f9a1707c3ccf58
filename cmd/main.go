package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Atulkumarjha/JusPay-sub000/internal/bank"
	"github.com/Atulkumarjha/JusPay-sub000/internal/facades"
	"github.com/Atulkumarjha/JusPay-sub000/internal/handlers"
	"github.com/Atulkumarjha/JusPay-sub000/internal/jwt"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/middlewares"
	"github.com/Atulkumarjha/JusPay-sub000/internal/repositories"
	"github.com/Atulkumarjha/JusPay-sub000/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title wallet-ledger API
// @version 1.0.0
// @description Microservice for token wallet ledgers and fiat withdrawal settlement
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds all application, database, Redis, Kafka, JWT, wallet,
// and bank simulator configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	BalanceCacheTTL   time.Duration

	KafkaAddr  string
	KafkaTopic string

	JWTSecretKey string
	JWTExpSecond int

	ExchangeRate  float64
	FeePercent    float64
	MinNetAmount  float64
	MonthlyLimit  float64
	StartBalance  float64
	GatewayTimeout time.Duration
}

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "database")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	balanceCacheTTLSecond := 0
	if balanceCacheTTLSecond, err = strconv.Atoi(getEnv("BALANCE_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}
	cfg.BalanceCacheTTL = time.Duration(balanceCacheTTLSecond) * time.Second

	// Kafka config
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "localhost:9092")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "wallet-transactions")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Wallet config
	if cfg.ExchangeRate, err = strconv.ParseFloat(getEnv("WALLET_EXCHANGE_RATE", "3"), 64); err != nil {
		return
	}
	if cfg.FeePercent, err = strconv.ParseFloat(getEnv("WALLET_FEE_PERCENT", "2"), 64); err != nil {
		return
	}
	if cfg.MinNetAmount, err = strconv.ParseFloat(getEnv("WALLET_MIN_NET_AMOUNT", "100"), 64); err != nil {
		return
	}

	// Bank simulator config
	if cfg.MonthlyLimit, err = strconv.ParseFloat(getEnv("BANK_MONTHLY_LIMIT", "100000"), 64); err != nil {
		return
	}
	if cfg.StartBalance, err = strconv.ParseFloat(getEnv("BANK_STARTING_BALANCE", "0"), 64); err != nil {
		return
	}

	// Gateway config
	gatewayTimeoutSecond := 0
	if gatewayTimeoutSecond, err = strconv.Atoi(getEnv("GATEWAY_TIMEOUT_SECOND", "5")); err != nil {
		return
	}
	cfg.GatewayTimeout = time.Duration(gatewayTimeoutSecond) * time.Second

	return
}

// run initializes the logger, database, Redis, Kafka, bank simulator,
// gateway manager, and HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for transaction events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaAddr),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	tokener := jwt.New(cfg.JWTSecretKey, time.Duration(cfg.JWTExpSecond)*time.Second)

	// Bank simulator and gateway manager
	bankSim := bank.NewSimulator(cfg.MonthlyLimit, cfg.StartBalance)
	gatewayManager := facades.NewGatewayManager(
		facades.NewJusPayGateway(),
		facades.NewCashfreeGateway(),
		facades.NewRazorpayGateway(),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	accountWriterRepo := repositories.NewAccountWriterRepository(db)
	accountReaderRepo := repositories.NewAccountReaderRepository(db)
	ledgerWriterRepo := repositories.NewLedgerWriterRepository(db)
	ledgerReaderRepo := repositories.NewLedgerReaderRepository(db)
	withdrawalWriterRepo := repositories.NewWithdrawalWriterRepository(db)
	withdrawalReaderRepo := repositories.NewWithdrawalReaderRepository(db)
	balanceCache := repositories.NewBalanceCacheRepository(rdb, cfg.BalanceCacheTTL)
	txRunner := repositories.NewTxRunner(db)

	// Initialize services
	converter := services.Converter{
		Rate:         cfg.ExchangeRate,
		FeePercent:   cfg.FeePercent,
		MinNetAmount: cfg.MinNetAmount,
	}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, accountWriterRepo, txRunner, tokener)
	walletService := services.NewWalletService(
		accountWriterRepo, accountReaderRepo,
		ledgerWriterRepo, ledgerReaderRepo,
		withdrawalWriterRepo, withdrawalReaderRepo,
		balanceCache, txRunner, kafkaWriter, converter,
	)
	settlementService := services.NewSettlementService(
		withdrawalReaderRepo, withdrawalWriterRepo,
		accountWriterRepo, ledgerWriterRepo,
		bankSim, gatewayManager,
		txRunner, kafkaWriter, cfg.GatewayTimeout,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	balanceHandler := handlers.NewGetBalanceHandler(walletService)
	depositHandler := handlers.NewDepositHandler(walletService)
	withdrawHandler := handlers.NewWithdrawHandler(walletService, settlementService)
	withdrawalStatusHandler := handlers.NewGetWithdrawalHandler(walletService)
	ledgerHandler := handlers.NewGetLedgerHandler(walletService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	handlers.RegisterRegisterHandler(r, registerHandler)
	handlers.RegisterLoginHandler(r, loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		handlers.RegisterGetBalanceHandler(r, balanceHandler)
		handlers.RegisterDepositHandler(r, depositHandler)
		handlers.RegisterWithdrawHandler(r, withdrawHandler)
		handlers.RegisterGetWithdrawalHandler(r, withdrawalStatusHandler)
		handlers.RegisterGetLedgerHandler(r, ledgerHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
