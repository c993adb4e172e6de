package user

import (
	"context"

	"ngo-backoffice/internal/domain/access"
	domain "ngo-backoffice/internal/domain/user"
)

type Usecase struct {
	users domain.Repository
}

func NewUsecase(users domain.Repository) *Usecase {
	return &Usecase{users: users}
}

func (u *Usecase) List(ctx context.Context, actor access.Principal) ([]UserDTO, error) {
	if err := access.Check(actor.Role, access.ActionUserList); err != nil {
		return nil, err
	}
	rows, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToDTO(&rows[i]))
	}
	return out, nil
}
