package promptweave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPostgresConfig(t *testing.T) {
	config := DefaultPostgresConfig()

	assert.Equal(t, PostgresDefaultMaxOpenConns, config.MaxOpenConns)
	assert.Equal(t, PostgresDefaultMaxIdleConns, config.MaxIdleConns)
	assert.Equal(t, PostgresDefaultConnMaxLifetime, config.ConnMaxLifetime)
	assert.Equal(t, PostgresDefaultConnMaxIdleTime, config.ConnMaxIdleTime)
	assert.Equal(t, PostgresTablePrefix, config.TablePrefix)
	assert.Equal(t, PostgresDefaultQueryTimeout, config.QueryTimeout)
	assert.False(t, config.AutoMigrate)
}

func TestNewPostgresStore_EmptyConnectionString(t *testing.T) {
	_, err := NewPostgresStore(PostgresConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgEmptyConnString)
}

func TestPostgresStore_TableName(t *testing.T) {
	store := &PostgresStore{config: PostgresConfig{TablePrefix: "custom_"}}
	assert.Equal(t, "custom_templates", store.tableName())

	store = &PostgresStore{config: DefaultPostgresConfig()}
	assert.Equal(t, PostgresTablePrefix+"templates", store.tableName())
}
