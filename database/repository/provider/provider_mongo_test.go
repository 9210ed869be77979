package providerRepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToPlain(t *testing.T) {
	oid := primitive.NewObjectID()
	booked := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	doc := bson.M{
		"_id":         oid,
		"price60":     int32(250),
		"price90":     int64(350),
		"bookedUntil": primitive.NewDateTimeFromTime(booked),
		"services": bson.A{
			bson.D{{Key: "name", Value: "Thai"}, {Key: "price60", Value: int32(200)}},
		},
		"status": "available",
	}

	plain, ok := toPlain(doc).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, oid.Hex(), plain["_id"])
	assert.Equal(t, 250.0, plain["price60"])
	assert.Equal(t, 350.0, plain["price90"])
	assert.True(t, booked.Equal(plain["bookedUntil"].(time.Time)))
	assert.Equal(t, "available", plain["status"])

	services, ok := plain["services"].([]any)
	require.True(t, ok)
	require.Len(t, services, 1)
	assert.Equal(t, map[string]any{"name": "Thai", "price60": 200.0}, services[0])
}

func TestToPlainDecimal(t *testing.T) {
	d, err := primitive.ParseDecimal128("450.5")
	require.NoError(t, err)
	assert.Equal(t, 450.5, toPlain(d))
}
