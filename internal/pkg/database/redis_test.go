package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFromExisting(db)

	mock.ExpectSet("payment_link:business:pl_1", "biz_1", 10*time.Minute).SetVal("OK")
	mock.ExpectGet("payment_link:business:pl_1").SetVal("biz_1")

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "payment_link:business:pl_1", "biz_1", 10*time.Minute))

	got, err := client.Get(ctx, "payment_link:business:pl_1")
	require.NoError(t, err)
	assert.Equal(t, "biz_1", got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFromExisting(db)

	mock.ExpectGet("storefront:business:sf_missing").RedisNil()

	got, err := client.Get(context.Background(), "storefront:business:sf_missing")

	assert.Error(t, err)
	assert.Empty(t, got)
}

func TestRedisClient_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFromExisting(db)

	mock.ExpectDel("payment_link:business:pl_1").SetVal(1)

	assert.NoError(t, client.Delete(context.Background(), "payment_link:business:pl_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
