package usecase

import (
	"github.com/m-mizutani/appveyor-status/pkg/domain/interfaces"
	"github.com/m-mizutani/appveyor-status/pkg/domain/types"
	"github.com/m-mizutani/appveyor-status/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

// appVeyor returns the injected API client, or a new one authenticated with token. The returned
// function releases what was created here and leaves an injected client alone.
func (x *UseCase) appVeyor(token types.AppVeyorToken) (interfaces.AppVeyor, func()) {
	if client := x.clients.AppVeyor(); client != nil {
		return client, func() {}
	}

	client := x.clients.NewAppVeyor(token)
	return client, client.Close
}
