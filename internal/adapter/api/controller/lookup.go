package controller

import (
	"context"

	"github.com/hugohenrick/gestor-pme/internal/domain/client"
	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/hugohenrick/gestor-pme/internal/domain/servicetype"
	"golang.org/x/sync/errgroup"
)

// names guarda os índices usados para exibir cliente e tipo de serviço
type names struct {
	clients      map[string]*client.Client
	serviceTypes map[string]*servicetype.ServiceType
}

// loadNames carrega clientes e tipos de serviço em paralelo
func loadNames(ctx context.Context, clients client.Repository, types servicetype.Repository) (*names, error) {
	var (
		cl []*client.Client
		st []*servicetype.ServiceType
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cl, err = clients.List(ctx, entity.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		st, err = types.List(ctx, entity.ListOptions{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &names{
		clients:      entity.IndexBy(cl, func(c *client.Client) string { return c.ID }),
		serviceTypes: entity.IndexBy(st, func(s *servicetype.ServiceType) string { return s.ID }),
	}, nil
}

func (n *names) client(id string) string {
	return client.NameOf(n.clients, id)
}

// serviceType devolve vazio quando nenhum tipo foi escolhido
func (n *names) serviceType(id string) string {
	if id == "" {
		return ""
	}
	return servicetype.NameOf(n.serviceTypes, id)
}
