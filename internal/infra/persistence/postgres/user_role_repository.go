package postgres

import (
	"context"

	"docs/internal/domain/entity"
	domainerrors "docs/internal/domain/errors"
	"docs/internal/domain/repository"
	"docs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRoleRepository implements the repository.UserRoleRepository interface using GORM.
type userRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository is the constructor for userRoleRepository.
func NewUserRoleRepository(db *gorm.DB) repository.UserRoleRepository {
	return &userRoleRepository{db: db}
}

// Create links a user to a role.
func (repo *userRoleRepository) Create(ctx context.Context, userRole *entity.UserRole) error {
	userRoleM := fromUserRoleDomain(userRole)

	if err := repo.db.WithContext(ctx).Create(userRoleM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserRoleExists, err.Error())
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user or role reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user role")
	}

	userRole.ID = userRoleM.ID
	userRole.CreatedAt = userRoleM.CreatedAt

	return nil
}

// FindAllByUserID lists the user's role links in insertion order.
func (repo *userRoleRepository) FindAllByUserID(ctx context.Context, userID uuid.UUID) (entity.UserRoles, error) {
	var userRoleMs []*model.UserRoleModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&userRoleMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user roles by user id")
	}

	userRoles := make(entity.UserRoles, 0, len(userRoleMs))
	for _, userRoleM := range userRoleMs {
		userRoles = append(userRoles, toUserRoleDomain(userRoleM))
	}

	return userRoles, nil
}

func toUserRoleDomain(data *model.UserRoleModel) *entity.UserRole {
	if data == nil {
		return nil
	}

	return &entity.UserRole{
		ID:        data.ID,
		UserID:    data.UserID,
		RoleID:    data.RoleID,
		CreatedAt: data.CreatedAt,
	}
}

func fromUserRoleDomain(data *entity.UserRole) *model.UserRoleModel {
	if data == nil {
		return nil
	}

	return &model.UserRoleModel{
		ID:        data.ID,
		UserID:    data.UserID,
		RoleID:    data.RoleID,
		CreatedAt: data.CreatedAt,
	}
}
