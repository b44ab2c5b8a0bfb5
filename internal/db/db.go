package db

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"studyrecs/internal/config"
	"studyrecs/internal/logger"
	"studyrecs/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormConfig is shared by the production and test dialectors so both
// translate driver errors into gorm.ErrForeignKeyViolated and friends.
func GormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	}
}

// Open connects to Postgres, sizes the pool and optionally migrates.
func Open(cfg *config.Config, log *logger.Logger) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(cfg.DSN()), GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Database connection established", "local", cfg.Local)

	if cfg.AutoMigrate {
		if err := Migrate(conn); err != nil {
			return nil, err
		}
		log.Info("Database migration completed")
	}

	if !cfg.IsProduction() {
		seedUsers(conn, log)
	}
	return conn, nil
}

// Migrate creates or updates every table. Order matters for the foreign keys.
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.User{},
		&models.Rec{},
		&models.Tag{},
		&models.Comment{},
		&models.StudyList{},
		&models.Like{},
		&models.Dislike{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Ping checks the pool can still reach the database.
func Ping(ctx context.Context, conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the pool.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedUsers adds a few accounts to an empty database. There is no sign-up
// route, so without them nothing could be submitted in development.
func seedUsers(conn *gorm.DB, log *logger.Logger) {
	var count int64
	if err := conn.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Warn("Failed to count users", "error", err)
		return
	}
	if count > 0 {
		log.Debug("Users already seeded, skipping")
		return
	}

	users := []models.User{
		{Name: "Ada", Email: "ada@example.com", Bio: "Mostly reads about compilers"},
		{Name: "Grace", Email: "grace@example.com", Bio: "Collects debugging war stories"},
		{Name: "Linus", Email: "linus@example.com"},
	}
	for _, u := range users {
		if err := conn.Create(&u).Error; err != nil {
			log.Warn("Failed to create user", "name", u.Name, "error", err)
		}
	}
	log.Info("Initial users created", "count", len(users))
}
