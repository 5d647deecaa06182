package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/ilm-med/internal/logger"
	"github.com/MKhiriev/ilm-med/internal/store"
	"github.com/MKhiriev/ilm-med/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userService implements UserService over a UserRepository.
//
// Role and status lookups by email go to the store on every call unless a
// RoleCache is configured; the cache entry of a user is dropped whenever an
// admin changes that user's role or status.
type userService struct {
	userRepository store.UserRepository

	// roleCache is optional; nil disables caching.
	roleCache store.RoleCache
	cacheTTL  time.Duration

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, roleCache store.RoleCache, cacheTTL time.Duration, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		roleCache:      roleCache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

// Register creates a new account for user.Email. Whatever role and status
// the client sent, the account starts as an active regular user.
func (u *userService) Register(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" {
		log.Error().Str("func", "*userService.Register").Msg("registration without email")
		return models.InsertResult{}, ErrEmptyEmail
	}

	user.ID = primitive.NilObjectID
	user.Role = models.RoleUser
	user.Status = models.StatusActive

	res, err := u.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUserAlreadyExists) {
		return models.UserAlreadyExists(), nil
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.InsertResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return res, nil
}

func (u *userService) GetUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepository.FindUserByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return user, nil
}

// UpdateProfile upserts the listed profile fields of the user with id.
func (u *userService) UpdateProfile(ctx context.Context, id string, update models.UserUpdate) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if update == (models.UserUpdate{}) {
		return models.UpdateResult{}, ErrEmptyUpdate
	}

	res, err := u.userRepository.UpsertUser(ctx, oid, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("updating user: %w", err)
	}
	return res, nil
}

func (u *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, found, err := u.lookupUser(ctx, email)
	if err != nil || !found {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (u *userService) IsActive(ctx context.Context, email string) (bool, error) {
	user, found, err := u.lookupUser(ctx, email)
	if err != nil || !found {
		return false, err
	}
	return user.IsActive(), nil
}

// ChangeRole sets the role of the user with id. An empty role means
// RoleUser; any value other than RoleUser or RoleAdmin is rejected.
func (u *userService) ChangeRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return models.UpdateResult{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	res, err := u.userRepository.SetUserRole(ctx, oid, role)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("changing user role: %w", err)
	}

	u.invalidate(ctx, oid)
	return res, nil
}

// ChangeStatus sets the status of the user with id. An empty status means
// StatusActive.
func (u *userService) ChangeStatus(ctx context.Context, id, status string) (models.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	if status == "" {
		status = models.StatusActive
	}

	res, err := u.userRepository.SetUserStatus(ctx, oid, status)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("changing user status: %w", err)
	}

	u.invalidate(ctx, oid)
	return res, nil
}

// lookupUser resolves the user by email, consulting the cache first when
// one is configured. Cache failures fall back to the store.
func (u *userService) lookupUser(ctx context.Context, email string) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	if u.roleCache != nil {
		cached, err := u.roleCache.GetUser(ctx, email)
		if err == nil {
			return cached, true, nil
		}
		if !errors.Is(err, store.ErrCacheMiss) {
			log.Warn().Err(err).Str("func", "*userService.lookupUser").Msg("role cache read failed")
		}
	}

	user, err := u.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("looking up user role: %w", err)
	}

	if u.roleCache != nil {
		if err = u.roleCache.SetUser(ctx, user, u.cacheTTL); err != nil {
			log.Warn().Err(err).Str("func", "*userService.lookupUser").Msg("role cache write failed")
		}
	}

	return user, true, nil
}

// invalidate drops the cache entry of the user with id.
func (u *userService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if u.roleCache == nil {
		return
	}
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil || user == nil {
		if err != nil {
			log.Warn().Err(err).Str("func", "*userService.invalidate").Msg("could not resolve user for cache invalidation")
		}
		return
	}

	if err = u.roleCache.Invalidate(ctx, user.Email); err != nil {
		log.Warn().Err(err).Str("func", "*userService.invalidate").Str("email", user.Email).Msg("role cache invalidation failed")
	}
}
