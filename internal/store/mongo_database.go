package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/config"
	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/migrations"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names inside the configured database.
const (
	usersCollection           = "allUsers"
	testsCollection           = "allTests"
	bannersCollection         = "allBanners"
	bookingsCollection        = "allBookings"
	divisionsCollection       = "divisions"
	districtsCollection       = "districts"
	promotionsCollection      = "promotions"
	recommendationsCollection = "recommendations"
)

// DB is the long-lived document store handle. It is acquired once at
// startup and injected into every repository.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to the deployment at cfg.URI and pings the
// primary. Both steps are bounded by cfg.ConnectTimeout when it is set.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true))

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to database successfully")

	return NewDB(client.Database(cfg.Name), log), nil
}

// NewDB wraps an already opened database.
func NewDB(database *mongo.Database, log *logger.Logger) *DB {
	return &DB{
		Database: database,
		client:   database.Client(),
		logger:   log,
	}
}

// Migrate creates the indexes the repositories rely on.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.Database)
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if db.client == nil {
		return nil
	}
	return db.client.Disconnect(ctx)
}
