package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rw-be-svc/internal/config"
	"rw-be-svc/internal/models"
)

// Database wraps the gorm connection
type Database struct {
	DB *gorm.DB
}

// NewDatabase opens a PostgreSQL connection and configures the pool
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time { return time.Now().Local() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// partialIndexes cannot be expressed with struct tags
var partialIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + models.UsersRTNumberIndex + ` ON users (rt_number) WHERE role = 'rt'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + models.UsersSingleRWIndex + ` ON users ((role)) WHERE role = 'rw'`,
}

// AutoMigrate creates or updates the schema
func (d *Database) AutoMigrate() error {
	err := d.DB.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.ComplaintVote{},
		&models.ComplaintComment{},
		&models.Transaction{},
		&models.LogScheduler{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	for _, ddl := range partialIndexes {
		if err := d.DB.Exec(ddl).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
