// File: internal/repository/user/gorm_user_repository.go
package user

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pharmago/pharmago/internal/domain"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, errors.New("invalid user ID")
	}

	var user domain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("[UserRepository] Database error finding user: %v", err)
		return nil, errors.New("database error finding user")
	}
	return &user, nil
}

func (r *gormUserRepository) Upsert(ctx context.Context, id, name string) (*domain.User, error) {
	user := &domain.User{ID: id, Name: name}
	if err := user.IsValid(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()

	existing, err := r.FindByID(ctx, id)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	if existing == nil {
		user.CreatedAt = now
		user.LastActiveAt = now
		if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
			log.Printf("[UserRepository] Database error creating user: %v", err)
			return nil, errors.New("database error creating user")
		}
		log.Printf("[UserRepository] User created: %s", user.ID)
		return user, nil
	}

	updates := map[string]interface{}{"last_active_at": now}
	if name != "" {
		updates["name"] = name
		existing.Name = name
	}
	if err := r.db.WithContext(ctx).Model(existing).Updates(updates).Error; err != nil {
		log.Printf("[UserRepository] Database error updating user %s: %v", id, err)
		return nil, errors.New("database error updating user")
	}
	existing.LastActiveAt = now
	return existing, nil
}
