package client

import (
	"testing"

	"circula/internal/config"
	"circula/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMysqlDSN(t *testing.T) {
	cfg := config.Database{
		User:     "root",
		Password: "secret",
		Host:     "db:3306",
		Name:     "circula",
	}

	dsn, err := MysqlDSN(cfg)
	require.NoError(t, err)
	assert.Contains(t, dsn, "root:secret@tcp(db:3306)/circula?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestMysqlDSN_DatabaseURLGetsFoundRows(t *testing.T) {
	dsn, err := MysqlDSN(config.Database{DatabaseURL: "u:p@tcp(h:1)/x?charset=utf8mb4"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "u:p@tcp(h:1)/x?")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")

	_, err = MysqlDSN(config.Database{DatabaseURL: "not a dsn"})
	assert.Error(t, err)
}

func TestInitDatabase_Sqlite(t *testing.T) {
	logger, _ := test.NewNullLogger()
	db, err := InitDatabase(config.Database{
		Driver:       "sqlite",
		SqlitePath:   "file:client_test?mode=memory&cache=shared",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"customers", "items", "orders", "payment_details", "cards", "wishlist", "feedback"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var count int64
	require.NoError(t, db.Model(&model.Item{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGormLogsThroughLogrus(t *testing.T) {
	logger, hook := test.NewNullLogger()
	db, err := InitSqliteClient("file:client_log_test?mode=memory&cache=shared", logger)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	hook.Reset()

	var card model.Card
	err = db.Where("customer_id = ?", 42).First(&card).Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, hook.AllEntries(), "a missing row is not logged")

	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "gorm", hook.LastEntry().Data["component"])
}

func TestInitDatabase_UnknownDriver(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := InitDatabase(config.Database{Driver: "oracle"}, logger)
	assert.Error(t, err)
}
