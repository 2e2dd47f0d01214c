//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/cmd/bootstrap"
	"github.com/sanctumos/clawedroad/cmd/bootstrap/components"
	"github.com/sanctumos/clawedroad/internal/infra/db"
	"github.com/sanctumos/clawedroad/internal/pkg/config"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "ledger"
	pgPassword = "ledgerpass"
	pgPort     = nat.Port("5432/tcp")
)

// sharedPostgres is one container per test binary; every suite gets its own
// database inside it. Ryuk removes the container when the binary exits.
var sharedPostgres struct {
	once sync.Once
	host string
	port nat.Port
	err  error
}

func postgresEndpoint(t *testing.T) (string, nat.Port) {
	t.Helper()
	sharedPostgres.once.Do(func() {
		sharedPostgres.host, sharedPostgres.port, sharedPostgres.err = startPostgres()
	})
	require.NoError(t, sharedPostgres.err, "failed to start postgres container")
	return sharedPostgres.host, sharedPostgres.port
}

func startPostgres() (string, nat.Port, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			// Durability is irrelevant for throwaway data.
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
			},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return adminDSN(host, port)
			}).WithStartupTimeout(time.Minute),
			Labels: map[string]string{"purpose": "ledger-e2e"},
		},
		Started: true,
	})
	if err != nil {
		return "", "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", "", err
	}
	port, err := container.MappedPort(ctx, pgPort)
	if err != nil {
		return "", "", err
	}
	return host, port, nil
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// newDatabase creates a uniquely named database and drops it when t ends.
func newDatabase(t *testing.T) config.DBConfig {
	t.Helper()
	host, port := postgresEndpoint(t)
	name := "ledger_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN(host, port))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE fails transiently while another suite copies template1.
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("retrying create database", "attempt", attempt, "error", err.Error())
		time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}

// applyMigrations runs every migrations/*.sql file in name order. The atlas
// CLI is not required in the test environment.
func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(repoRoot(t), "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migration files found")
	sort.Strings(files)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, f := range files {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "migration %s failed", filepath.Base(f))
	}
}

// repoRoot walks up from the package directory to the module root.
func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above working directory")
		dir = parent
	}
}

// app is the production object graph wired against the test database.
type app struct {
	Router     *gin.Engine
	Config     config.Config
	Settlement commands.SettlementCommands
}

func startApp(t *testing.T, pool *pgxpool.Pool, dbCfg config.DBConfig) *app {
	t.Helper()
	built := &app{}

	cfg := config.NewTestConfig()
	cfg.DB = dbCfg

	fxApp := fx.New(
		fx.Supply(pool, cfg),
		bootstrap.ConfigSections,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&built.Router, &built.Config, &built.Settlement),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, fxApp.Start(ctx), "failed to start application")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fxApp.Stop(ctx); err != nil {
			slog.Warn("failed to stop application", "error", err.Error())
		}
	})
	return built
}

// SharedSuite gives every e2e suite its own migrated database and a running
// router. Subtests start from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	// Settlement lets tests drive the pending sweep directly.
	Settlement commands.SettlementCommands
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	dbCfg := newDatabase(t)
	pool, cleanup, err := db.Connect(dbCfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	applyMigrations(t, pool)

	built := startApp(t, pool, dbCfg)
	s.DB = pool
	s.Router = built.Router
	s.Config = built.Config
	s.Settlement = built.Settlement
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database")
}
