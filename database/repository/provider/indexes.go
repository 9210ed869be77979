package providerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ensureIndexes creates the lookup index used by GetRawByID. Legacy documents may lack
// an id, so it is not unique.
func (r *MongoProviderRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	idIdx := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, idIdx); err != nil {
		return fmt.Errorf("failed to create provider indexes: %w", err)
	}
	return nil
}
