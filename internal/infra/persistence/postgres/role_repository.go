package postgres

import (
	"context"

	"docs/internal/domain/entity"
	"docs/internal/domain/repository"
	"docs/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByRoleName retrieves a role by its unique name.
func (repo *roleRepository) FindByRoleName(ctx context.Context, roleName string) (*entity.Role, error) {
	var roleM model.RoleModel
	err := repo.db.WithContext(ctx).
		Where("role_name = ?", roleName).
		First(&roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindAllByIDs retrieves the roles with the given IDs, ordered like ids.
// Unknown IDs are skipped.
func (repo *roleRepository) FindAllByIDs(ctx context.Context, ids []uuid.UUID) (entity.Roles, error) {
	if len(ids) == 0 {
		return entity.Roles{}, nil
	}

	var roleMs []*model.RoleModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&roleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by ids")
	}

	byID := make(map[uuid.UUID]*model.RoleModel, len(roleMs))
	for _, roleM := range roleMs {
		byID[roleM.ID] = roleM
	}

	roles := make(entity.Roles, 0, len(roleMs))
	for _, id := range ids {
		if roleM, ok := byID[id]; ok {
			roles = append(roles, toRoleDomain(roleM))
			delete(byID, id)
		}
	}

	return roles, nil
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:       data.ID,
		RoleName: data.RoleName,
	}
}
