package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles user account creation, lookup and admin toggles against the
// "allUsers" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	users  *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  db.Collection(usersCollection),
		logger: logger,
	}
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := findAll[models.User](ctx, r.users, bson.M{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}
	return users, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
//
// Error handling:
//   - no matching document → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := findOne[models.User](ctx, r.users, bson.M{"email": email})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, ErrNoUserWasFound
	}
	return *user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := findOne[models.User](ctx, r.users, byID(id))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user")
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a new account in a single write. The unique index on
// email rejects a second account for the same address.
//
// Error handling:
//   - duplicate key → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingWrite].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	res, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user already exists")
		return models.InsertResult{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.InsertResult{}, writeError(r.users, err)
	}

	return insertResult(res), nil
}

// UpsertUser writes the non-nil fields of update to the user with the given
// id, creating the document when the id is unknown.
func (r *userRepository) UpsertUser(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.UpdateResult, error) {
	res, err := r.users.UpdateOne(ctx, byID(id), bson.M{"$set": update}, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		return models.UpdateResult{}, ErrUserAlreadyExists
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpsertUser").Msg("error upserting user")
		return models.UpdateResult{}, writeError(r.users, err)
	}
	return updateResult(res), nil
}

func (r *userRepository) SetUserRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	return r.setField(ctx, id, "role", role)
}

func (r *userRepository) SetUserStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	return r.setField(ctx, id, "status", status)
}

func (r *userRepository) setField(ctx context.Context, id primitive.ObjectID, field, value string) (models.UpdateResult, error) {
	res, err := r.users.UpdateOne(ctx, byID(id), bson.M{"$set": bson.M{field: value}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.setField").Str("field", field).Msg("error updating user")
		return models.UpdateResult{}, fmt.Errorf("setting user %s: %w", field, writeError(r.users, err))
	}
	return updateResult(res), nil
}
