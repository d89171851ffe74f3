package command

import "content-service/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token        string             `json:"-"`
	RefreshToken string             `json:"-"`
	User         *common.UserResult `json:"user"`
}
