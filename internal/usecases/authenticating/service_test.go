package authenticating

import (
	"testing"

	"github.com/nvieira96/aicrm-api/infrastructure/repository/mocks"
	"github.com/nvieira96/aicrm-api/internal/config"
	"github.com/nvieira96/aicrm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		setup   func(m *mocks.MockUserRepository)
		wantErr error
	}{
		{
			name:    "Campos obrigatórios ausentes",
			user:    &domain.User{Email: "a@b.com"},
			setup:   func(m *mocks.MockUserRepository) {},
			wantErr: ErrMissingRequiredData,
		},
		{
			name: "Email já cadastrado",
			user: &domain.User{Name: "Ana", Email: "ana@empresa.com", PasswordHash: "Senha@123"},
			setup: func(m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@empresa.com").Return(&domain.User{ID: 1}, nil)
			},
			wantErr: ErrUserAlreadyExists,
		},
		{
			name: "Email é normalizado, senha vira hash e a conta nasce inativa",
			user: &domain.User{Name: "Ana", Email: "  Ana@Empresa.com ", PasswordHash: "Senha@123"},
			setup: func(m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@empresa.com").Return(nil, nil)
				m.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(u *domain.User) (*domain.User, error) {
						assert.Equal(t, "ana@empresa.com", u.Email)
						assert.NotEqual(t, "Senha@123", u.PasswordHash)
						assert.False(t, u.Active)
						assert.Equal(t, 3, u.RoleID)
						u.ID = 7
						return u, nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(userRepo)

			service := NewService(userRepo, testConfig())
			created, err := service.CreateUser(tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, created.ID)
		})
	}
}

func TestLoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           1,
			Name:         "Ana",
			Email:        "ana@empresa.com",
			PasswordHash: hashOf(t, "Senha@123"),
			Active:       true,
			RoleID:       3,
		}
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, m *mocks.MockUserRepository)
		wantErr  error
	}{
		{
			name:    "Credenciais ausentes",
			setup:   func(t *testing.T, m *mocks.MockUserRepository) {},
			wantErr: ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@empresa.com",
			password: "x",
			setup: func(t *testing.T, m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ninguem@empresa.com").Return(nil, nil)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name:     "Conta desativada",
			email:    "ana@empresa.com",
			password: "Senha@123",
			setup: func(t *testing.T, m *mocks.MockUserRepository) {
				user := activeUser(t)
				user.Active = false
				m.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil)
			},
			wantErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@empresa.com",
			password: "errada",
			setup: func(t *testing.T, m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t), nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "Login com sucesso gera token válido",
			email:    "Ana@Empresa.com",
			password: "Senha@123",
			setup: func(t *testing.T, m *mocks.MockUserRepository) {
				m.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := mocks.NewMockUserRepository(ctrl)
			tt.setup(t, userRepo)

			service := NewService(userRepo, testConfig())
			token, err := service.LoginUser(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			// O token emitido valida e carrega as claims do usuário
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
			assert.Equal(t, "ana@empresa.com", claims.UserEmail)
			assert.Equal(t, 3, claims.UserRoleID)
		})
	}
}

func TestValidateToken_TokenInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	_, err := service.ValidateToken("token-qualquer")
	assert.Error(t, err)
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Senha forte", "Senha@123", true},
		{"Curta demais", "S@1a", false},
		{"Sem maiúscula", "senha@123", false},
		{"Sem minúscula", "SENHA@123", false},
		{"Sem número", "Senha@abc", false},
		{"Sem caractere especial", "Senha1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, testConfig())

	user := &domain.User{ID: 1, PasswordHash: hashOf(t, "Antiga@123")}

	t.Run("Senha atual incorreta", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(1).Return(user, nil)

		err := service.ChangePassword(1, "errada", "Nova@1234")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Nova senha fraca", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(1).Return(user, nil)

		err := service.ChangePassword(1, "Antiga@123", "fraca")
		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Troca com sucesso persiste o novo hash", func(t *testing.T) {
		userRepo.EXPECT().GetUserByID(1).Return(user, nil)
		userRepo.EXPECT().
			UpdatePassword(1, gomock.Any()).
			DoAndReturn(func(_ int, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Nova@1234")))
				return nil
			})

		assert.NoError(t, service.ChangePassword(1, "Antiga@123", "Nova@1234"))
	})
}
