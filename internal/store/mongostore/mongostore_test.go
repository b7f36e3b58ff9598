package mongostore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"siparis-backend/internal/store"
	"siparis-backend/internal/store/storetest"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MONGO_TEST_URI tanımlı değilse atlanır, ör: mongodb://localhost:27017
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI tanımlı değil")
	}

	storetest.Run(t, func(t *testing.T) *store.Store {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		dbName := fmt.Sprintf("siparis_test_%d", time.Now().UnixNano())
		s, err := Connect(ctx, uri, dbName)
		require.NoError(t, err)

		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			dropDatabase(ctx, uri, dbName)
			_ = s.Close(ctx)
		})
		return s
	})
}

func dropDatabase(ctx context.Context, uri, name string) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return
	}
	defer client.Disconnect(ctx)
	_ = client.Database(name).Drop(ctx)
}
