package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"go-produtos-api/internal/model"
)

func TestMemoryProductRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	first, err := repo.Create(ctx, model.ProductInput{Descricao: ptr("Caneta")})
	require.NoError(t, err)
	second, err := repo.Create(ctx, model.ProductInput{Descricao: ptr("Lápis")})
	require.NoError(t, err)
	require.Less(t, first, second)

	require.NoError(t, repo.Update(ctx, first, model.ProductInput{Descricao: ptr("Caneta azul"), Valor: ptr(2.0)}))
	got, err := repo.FindByID(ctx, first)
	require.NoError(t, err)
	require.Equal(t, "Caneta azul", *got.Descricao)
	require.Nil(t, got.Marca)

	require.NoError(t, repo.Delete(ctx, first))
	require.ErrorIs(t, repo.Delete(ctx, first), model.ErrProductNotFound)
	require.ErrorIs(t, repo.Update(ctx, first, model.ProductInput{}), model.ErrProductNotFound)
	_, err = repo.FindByID(ctx, first)
	require.ErrorIs(t, err, model.ErrProductNotFound)

	third, err := repo.Create(ctx, model.ProductInput{})
	require.NoError(t, err)
	require.Greater(t, third, second)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second, list[0].ID)
}

func TestMemoryUserRepository_UniqueLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	id, err := repo.Create(ctx, model.User{Login: "ana1", Senha: "h"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.User{Login: "ana1", Senha: "h2"})
	require.ErrorContains(t, err, "duplicate login")

	u, err := repo.FindByLogin(ctx, "ana1")
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
	require.Equal(t, model.RoleUser, u.Roles)

	require.NoError(t, repo.SetRoles(id, "USER;ADMIN"))
	u, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.True(t, u.HasRole(model.RoleAdmin))

	_, err = repo.FindByID(ctx, id+1)
	require.ErrorIs(t, err, model.ErrUserNotFound)
	require.ErrorIs(t, repo.SetRoles(id+1, "ADMIN"), model.ErrUserNotFound)
}
