package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salesboard/internal/domain/entity"
	domainerrors "salesboard/internal/domain/errors"
	"salesboard/internal/domain/repository"
	mockRepo "salesboard/internal/mocks/repository"
	mockUC "salesboard/internal/mocks/usecase"
	"salesboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

type clientServiceFixture struct {
	service    usecase.ClientUsecase
	clientRepo *mockRepo.MockClientRepository
	refresher  *mockUC.MockDashboardRefresher
}

func createTestClientService(t *testing.T) *clientServiceFixture {
	t.Helper()

	clientRepo := mockRepo.NewMockClientRepository(t)
	refresher := mockUC.NewMockDashboardRefresher(t)

	return &clientServiceFixture{
		service: NewClientService(ClientServiceParams{
			ClientRepo: clientRepo,
			Refresher:  refresher,
			Logger:     discardLogger(),
		}),
		clientRepo: clientRepo,
		refresher:  refresher,
	}
}

func TestClientService_CreateClient(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()
	birth := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)

	fx.clientRepo.EXPECT().
		CreateClient(ctx, mock.AnythingOfType("*entity.Client")).
		Run(func(_ context.Context, client *entity.Client) {
			client.ID = 7
		}).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	client, err := fx.service.CreateClient(ctx, &usecase.CreateClientInput{
		Name:      "  Ana  ",
		Email:     "ana@example.com",
		CPF:       strPtr(" 12345678901 "),
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), client.ID)
	assert.Equal(t, "Ana", client.Name)
	require.NotNil(t, client.CPF)
	assert.Equal(t, "12345678901", *client.CPF)
}

func TestClientService_CreateClient_BlankCPFIsAbsent(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().
		CreateClient(ctx, mock.MatchedBy(func(c *entity.Client) bool { return c.CPF == nil })).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(nil, errors.New("docstore down"))

	_, err := fx.service.CreateClient(ctx, &usecase.CreateClientInput{Name: "Ana", Email: "a@b.c", CPF: strPtr("  ")})
	require.NoError(t, err, "refresh failures never fail the mutation")
}

func TestClientService_CreateClient_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CreateClientInput
	}{
		{name: "empty name", input: usecase.CreateClientInput{Name: " ", Email: "a@b.c"}},
		{name: "empty email", input: usecase.CreateClientInput{Name: "Ana"}},
		{name: "long cpf", input: usecase.CreateClientInput{Name: "Ana", Email: "a@b.c", CPF: strPtr("123456789012")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestClientService(t)

			_, err := fx.service.CreateClient(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestClientService_CreateClient_DuplicateCPF(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().
		CreateClient(ctx, mock.AnythingOfType("*entity.Client")).
		Return(repository.ErrDuplicateCPF)

	_, err := fx.service.CreateClient(ctx, &usecase.CreateClientInput{Name: "Ana", Email: "a@b.c", CPF: strPtr("1")})
	assert.ErrorIs(t, err, domainerrors.ErrCPFAlreadyExists)
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(3)).Return(nil, repository.ErrClientNotFound)

	_, err := fx.service.GetClient(ctx, 3)
	assert.Equal(t, domainerrors.ErrClientNotFound, err)
}

func TestClientService_UpdateClient_OnlySuppliedFields(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	existing := &entity.Client{ID: 1, Name: "Ana", Email: "old@example.com", CPF: strPtr("111")}
	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(1)).Return(existing, nil)
	fx.clientRepo.EXPECT().
		UpdateClient(ctx, mock.MatchedBy(func(c *entity.Client) bool {
			return c.Name == "Ana" && c.Email == "x@y.com" && c.CPF != nil && *c.CPF == "111"
		})).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	updated, err := fx.service.UpdateClient(ctx, 1, &usecase.UpdateClientInput{Email: strPtr("x@y.com")})
	require.NoError(t, err)
	assert.Equal(t, "x@y.com", updated.Email)
	assert.Equal(t, "Ana", updated.Name)
}

func TestClientService_UpdateClient_BlankCPFKeepsExisting(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	existing := &entity.Client{ID: 1, Name: "Ana", Email: "ana@example.com", CPF: strPtr("12345678901")}
	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(1)).Return(existing, nil)
	fx.clientRepo.EXPECT().
		UpdateClient(ctx, mock.MatchedBy(func(c *entity.Client) bool {
			return c.CPF != nil && *c.CPF == "12345678901"
		})).
		Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)

	updated, err := fx.service.UpdateClient(ctx, 1, &usecase.UpdateClientInput{CPF: strPtr("  ")})
	require.NoError(t, err)
	require.NotNil(t, updated.CPF)
	assert.Equal(t, "12345678901", *updated.CPF)
}

func TestClientService_UpdateClient_NotFound(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().FindClientByID(ctx, int64(9)).Return(nil, repository.ErrClientNotFound)

	_, err := fx.service.UpdateClient(ctx, 9, &usecase.UpdateClientInput{Email: strPtr("x@y.com")})
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

func TestClientService_DeleteClient(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().DeleteClient(ctx, int64(1)).Return(nil)
	fx.refresher.EXPECT().Refresh(ctx).Return(&entity.DashboardSummary{}, nil)
	require.NoError(t, fx.service.DeleteClient(ctx, 1))

	fx.clientRepo.EXPECT().DeleteClient(ctx, int64(2)).Return(repository.ErrClientNotFound)
	assert.ErrorIs(t, fx.service.DeleteClient(ctx, 2), domainerrors.ErrClientNotFound)
}

func TestClientService_ListClients_Error(t *testing.T) {
	fx := createTestClientService(t)
	ctx := context.Background()

	fx.clientRepo.EXPECT().ListClients(ctx).Return(nil, errors.New("database error"))

	_, err := fx.service.ListClients(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list clients")
}
