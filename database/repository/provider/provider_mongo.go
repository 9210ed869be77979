package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Philip2024394/website-massage--sub024/config"
	"github.com/Philip2024394/website-massage--sub024/database"
	"github.com/Philip2024394/website-massage--sub024/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo() ProviderRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("providers")
	repo := &MongoProviderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to create provider indexes", zap.Error(err))
	}
	return repo
}

func (r *MongoProviderRepo) GetRawByID(ctx context.Context, id string) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		filter = bson.M{"$or": []bson.M{{"id": id}, {"_id": oid}}}
	}

	var doc bson.M
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("provider %s: %w", id, ErrProviderNotFound)
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}

	raw, _ := toPlain(doc).(map[string]any)
	if _, hasID := raw["id"]; !hasID {
		raw["id"] = id
	}
	return raw, nil
}

func (r *MongoProviderRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID  string             `bson:"id"`
			OID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		if doc.ID != "" {
			ids = append(ids, doc.ID)
		} else if !doc.OID.IsZero() {
			ids = append(ids, doc.OID.Hex())
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return ids, nil
}

// toPlain converts driver types into the plain values the record adapter understands.
func toPlain(v any) any {
	switch val := v.(type) {
	case bson.M:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toPlain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = toPlain(item)
		}
		return out
	case bson.D:
		out := make(map[string]any, len(val))
		for _, e := range val {
			out[e.Key] = toPlain(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toPlain(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toPlain(item)
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	case primitive.DateTime:
		return val.Time()
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(val.String(), 64)
		if err != nil {
			return nil
		}
		return f
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case int:
		return float64(val)
	}
	return v
}
