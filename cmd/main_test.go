package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "v1.0.0") ||
		!contains(output, "abcd1234") ||
		!contains(output, "2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", cfg.AppHost, cfg.AppPort, cfg.LogLevel)
	}

	// PostgreSQL
	if cfg.PgHost != "localhost" || cfg.PgPort != 5432 || cfg.PgUser != "user" || cfg.PgPassword != "password" || cfg.PgDB != "database" ||
		cfg.PgMaxOpenConns != 16 || cfg.PgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config")
	}

	// Redis
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 || cfg.BalanceCacheTTL != 30*time.Second {
		t.Errorf("unexpected redis config")
	}

	// Kafka
	if cfg.KafkaAddr != "localhost:9092" || cfg.KafkaTopic != "wallet-transactions" {
		t.Errorf("unexpected kafka config")
	}

	// JWT
	if cfg.JWTSecretKey != "my_super_secret_key" || cfg.JWTExpSecond != 3600 {
		t.Errorf("unexpected jwt config")
	}

	// Wallet
	if cfg.ExchangeRate != 3 || cfg.FeePercent != 2 || cfg.MinNetAmount != 100 {
		t.Errorf("unexpected wallet config")
	}

	// Bank simulator and gateway
	if cfg.MonthlyLimit != 100000 || cfg.StartBalance != 0 || cfg.GatewayTimeout != 5*time.Second {
		t.Errorf("unexpected bank/gateway config")
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")
	os.Setenv("BALANCE_CACHE_TTL_SECOND", "120")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9093")
	os.Setenv("KAFKA_TOPIC", "settlement-events")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("JWT_EXP_SECOND", "300")

	os.Setenv("WALLET_EXCHANGE_RATE", "2.5")
	os.Setenv("WALLET_FEE_PERCENT", "1.5")
	os.Setenv("WALLET_MIN_NET_AMOUNT", "250")

	os.Setenv("BANK_MONTHLY_LIMIT", "50000")
	os.Setenv("BANK_STARTING_BALANCE", "1000")
	os.Setenv("GATEWAY_TIMEOUT_SECOND", "10")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if cfg.PgHost != "pg.example.com" || cfg.PgPort != 5433 || cfg.PgUser != "admin" || cfg.PgPassword != "secret" || cfg.PgDB != "mydb" ||
		cfg.PgMaxOpenConns != 20 || cfg.PgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 || cfg.RedisPassword != "redispass" ||
		cfg.RedisPoolSize != 15 || cfg.RedisMinIdleConns != 5 || cfg.BalanceCacheTTL != 120*time.Second {
		t.Errorf("unexpected redis config")
	}
	if cfg.KafkaAddr != "kafka.example.com:9093" || cfg.KafkaTopic != "settlement-events" {
		t.Errorf("unexpected kafka config")
	}
	if cfg.JWTSecretKey != "supersecret" || cfg.JWTExpSecond != 300 {
		t.Errorf("unexpected jwt config")
	}
	if cfg.ExchangeRate != 2.5 || cfg.FeePercent != 1.5 || cfg.MinNetAmount != 250 {
		t.Errorf("unexpected wallet config")
	}
	if cfg.MonthlyLimit != 50000 || cfg.StartBalance != 1000 || cfg.GatewayTimeout != 10*time.Second {
		t.Errorf("unexpected bank/gateway config")
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for invalid POSTGRES_PORT")
	}
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := config{
		AppHost:           "127.0.0.1",
		AppPort:           "8086",
		LogLevel:          "debug",
		PgHost:            pgHost,
		PgPort:            pgPort.Int(),
		PgUser:            "user",
		PgPassword:        "password",
		PgDB:              "testdb",
		PgMaxOpenConns:    5,
		PgMaxIdleConns:    2,
		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisDB:           0,
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		BalanceCacheTTL:   30 * time.Second,
		KafkaAddr:         "localhost:9092",
		KafkaTopic:        "wallet-transactions",
		JWTSecretKey:      "testsecret",
		JWTExpSecond:      60,
		ExchangeRate:      3,
		FeePercent:        2,
		MinNetAmount:      100,
		MonthlyLimit:      100000,
		StartBalance:      0,
		GatewayTimeout:    5 * time.Second,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
