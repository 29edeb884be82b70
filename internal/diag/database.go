package diag

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const dbCheckTimeout = 5 * time.Second

// CheckDatabase attempts a single MongoDB connection with a bounded
// timeout and tears it down immediately.  Success means a connection
// was established and the primary answered a ping; any error fails the
// check and is never retried.
func CheckDatabase(ctx context.Context, uri string) []Result {
	const name = "mongodb connection"
	if uri == "" {
		return []Result{Fail(name, "MONGODB_URI not set")}
	}

	ctx, cancel := context.WithTimeout(ctx, dbCheckTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return []Result{Failf(name, "connect: %v", err)}
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return []Result{Failf(name, "ping: %v", err)}
	}
	return []Result{Pass(name, "connected and pinged primary")}
}
