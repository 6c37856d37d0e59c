package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory session store used by every scenario.
func NewDb(models ...any) *Db {
	once.Do(
		func() {
			db = open(models)
		},
	)

	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file:integration?mode=memory&cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// ClearDB removes every row so scenarios start from an empty session.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", model, err)
		}
	}
	return nil
}

// HealthCheck pings the underlying connection.
func (d *Db) HealthCheck() bool {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
