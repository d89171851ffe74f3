package mapper

import (
	"content-service/internal/application/common"
	"content-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:        user.Id,
		CreatedAt: user.CreatedAt,
		Email:     user.Email,
	}
}
