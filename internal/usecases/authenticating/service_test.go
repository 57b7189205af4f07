package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecoclean/fidelidade-api/infrastructure/repository/mocks"
	"github.com/ecoclean/fidelidade-api/internal/config"
	"github.com/ecoclean/fidelidade-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUserComSucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("maria@ecoclean.com.br").
		Return(&domain.User{
			ID:           1,
			Name:         "Maria",
			Email:        "maria@ecoclean.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
			RoleID:       1,
		}, nil)

	token, err := service.LoginUser("  Maria@EcoClean.com.br ", "senha123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido deve ser válido e carregar os dados do usuário
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "maria@ecoclean.com.br", claims.UserEmail)
	assert.Equal(t, 1, claims.UserRoleID)
}

func TestLoginUserSenhaIncorreta(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("maria@ecoclean.com.br").
		Return(&domain.User{
			ID:           1,
			Email:        "maria@ecoclean.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       true,
		}, nil)

	token, err := service.LoginUser("maria@ecoclean.com.br", "senha-errada")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUserDesativado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("maria@ecoclean.com.br").
		Return(&domain.User{
			ID:           1,
			Email:        "maria@ecoclean.com.br",
			PasswordHash: hashPassword(t, "senha123"),
			Active:       false,
		}, nil)

	token, err := service.LoginUser("maria@ecoclean.com.br", "senha123")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUserNaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("ninguem@ecoclean.com.br").
		Return(nil, nil)

	token, err := service.LoginUser("ninguem@ecoclean.com.br", "senha123")
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUserEmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("maria@ecoclean.com.br").
		Return(&domain.User{ID: 1, Email: "maria@ecoclean.com.br"}, nil)

	created, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Email:        "maria@ecoclean.com.br",
		PasswordHash: "senha123",
	})
	assert.Nil(t, created)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUserGeraHashDaSenha(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	repo.EXPECT().
		GetUserByEmail("joao@ecoclean.com.br").
		Return(nil, nil)

	repo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(u *domain.User) (*domain.User, error) {
			// A senha nunca deve chegar em texto puro ao repositório
			assert.NotEqual(t, "senha123", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
			assert.True(t, u.Active)
			assert.Equal(t, 2, u.RoleID)
			u.ID = 7
			return u, nil
		})

	created, err := service.CreateUser(&domain.User{
		Name:         "João",
		Email:        " Joao@EcoClean.com.br ",
		PasswordHash: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.Equal(t, "joao@ecoclean.com.br", created.Email)
}

func TestValidateTokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	service := NewService(repo, testConfig())

	claims, err := service.ValidateToken("token-qualquer")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
