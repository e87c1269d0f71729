package relational

import (
	"context"
	"testing"
	"time"

	"salesboard/internal/domain/entity"
	"salesboard/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestClientRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	birthDate := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	client := &entity.Client{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		CPF:       strPtr("12345678901"),
		BirthDate: &birthDate,
	}

	require.NoError(t, repo.CreateClient(ctx, client))
	require.NotZero(t, client.ID)

	found, err := repo.FindClientByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.Name)
	assert.Equal(t, "maria@example.com", found.Email)
	require.NotNil(t, found.CPF)
	assert.Equal(t, "12345678901", *found.CPF)
	require.NotNil(t, found.BirthDate)
	assert.Equal(t, "1990-05-17", found.BirthDate.Format(time.DateOnly))

	found.Email = "maria.silva@example.com"
	found.CPF = nil
	require.NoError(t, repo.UpdateClient(ctx, found))

	updated, err := repo.FindClientByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "maria.silva@example.com", updated.Email)
	assert.Nil(t, updated.CPF)

	clients, err := repo.ListClients(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 1)

	require.NoError(t, repo.DeleteClient(ctx, client.ID))

	_, err = repo.FindClientByID(ctx, client.ID)
	assert.ErrorIs(t, err, repository.ErrClientNotFound)
}

func TestClientRepository_DuplicateCPF(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateClient(ctx, &entity.Client{Name: "A", Email: "a@example.com", CPF: strPtr("11111111111")}))

	err := repo.CreateClient(ctx, &entity.Client{Name: "B", Email: "b@example.com", CPF: strPtr("11111111111")})
	assert.ErrorIs(t, err, repository.ErrDuplicateCPF)

	other := &entity.Client{Name: "C", Email: "c@example.com", CPF: strPtr("22222222222")}
	require.NoError(t, repo.CreateClient(ctx, other))

	other.CPF = strPtr("11111111111")
	assert.ErrorIs(t, repo.UpdateClient(ctx, other), repository.ErrDuplicateCPF)
}

func TestClientRepository_AbsentCPFDoesNotCollide(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.CreateClient(ctx, &entity.Client{Name: "A", Email: "a@example.com"}))
	require.NoError(t, repo.CreateClient(ctx, &entity.Client{Name: "B", Email: "b@example.com"}))
}

func TestClientRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	_, err := repo.FindClientByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrClientNotFound)

	assert.ErrorIs(t, repo.DeleteClient(ctx, 999), repository.ErrClientNotFound)
	assert.ErrorIs(t, repo.UpdateClient(ctx, &entity.Client{ID: 999, Name: "x", Email: "x"}), repository.ErrClientNotFound)
}
