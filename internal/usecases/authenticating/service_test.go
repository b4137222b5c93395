package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stevetowers08/reporting-workspace-api/infrastructure/repository/mocks"
	"github.com/stevetowers08/reporting-workspace-api/internal/config"
	"github.com/stevetowers08/reporting-workspace-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func stringPtr(s string) *string {
	return &s
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: mockUserRepo,
		cfg:      &config.Config{SecretKey: "segredo-de-teste"},
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login com credenciais válidas retorna token",
			email:    "Usuario@Example.com",
			password: "Senha@Forte1",
			setup: func() {
				// O email é normalizado antes da consulta
				mockUserRepo.EXPECT().
					GetUserByEmail("usuario@example.com").
					Return(&domain.User{
						ID:           1,
						Name:         "Usuário",
						Email:        "usuario@example.com",
						Active:       true,
						RoleID:       1,
						PasswordHash: hashPassword(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, 1, claims.UserRoleID)
			},
		},
		{
			name:     "Senha incorreta retorna erro de credenciais",
			email:    "usuario@example.com",
			password: "senha-errada",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("usuario@example.com").
					Return(&domain.User{
						ID:           1,
						Active:       true,
						PasswordHash: hashPassword(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
				assert.Empty(t, token)
			},
		},
		{
			name:     "Usuário desativado não pode entrar",
			email:    "usuario@example.com",
			password: "Senha@Forte1",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("usuario@example.com").
					Return(&domain.User{
						ID:           1,
						Active:       false,
						PasswordHash: hashPassword(t, "Senha@Forte1"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Usuário inexistente retorna erro",
			email:    "ninguem@example.com",
			password: "Senha@Forte1",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("ninguem@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "Email vazio retorna erro de dados obrigatórios",
			email:    "",
			password: "Senha@Forte1",
			setup:    func() {},
			validate: func(t *testing.T, token string, err error) {
				assert.Error(t, err)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{userRepo: mockUserRepo}

	t.Run("Cria usuário inativo com senha criptografada e papel padrão", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("novo@example.com").
			Return(nil, nil)

		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				assert.NotEqual(t, "Senha@Forte1", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Forte1")))
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name:         "Novo",
			Lastname:     "Usuário",
			Email:        "Novo@Example.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "novo@example.com", user.Email)
	})

	t.Run("Email já cadastrado retorna erro", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByEmail("existe@example.com").
			Return(&domain.User{ID: 7}, nil)

		user, err := service.CreateUser(&domain.User{
			Name:         "Outro",
			Lastname:     "Usuário",
			Email:        "existe@example.com",
			PasswordHash: "Senha@Forte1",
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("Dados obrigatórios ausentes retornam erro", func(t *testing.T) {
		user, err := service.CreateUser(&domain.User{Email: "só-email@example.com"})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Nil(t, user)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{userRepo: mockUserRepo}

	t.Run("Altera a senha quando a atual confere e a nova é forte", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@Senha1")}, nil)

		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Nova@Senha22")))
				return nil
			})

		err := service.ChangePassword(1, "Antiga@Senha1", "Nova@Senha22")

		assert.NoError(t, err)
	})

	t.Run("Senha atual incorreta retorna erro", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@Senha1")}, nil)

		err := service.ChangePassword(1, "errada", "Nova@Senha22")

		assert.Error(t, err)
	})

	t.Run("Nova senha igual à atual retorna erro", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@Senha1")}, nil)

		err := service.ChangePassword(1, "Antiga@Senha1", "Antiga@Senha1")

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrSamePassword)
	})

	t.Run("Nova senha fraca retorna erro de validação", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: hashPassword(t, "Antiga@Senha1")}, nil)

		err := service.ChangePassword(1, "Antiga@Senha1", "fraca")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "a senha deve conter")
	})
}

func TestService_GenerateStrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{userRepo: mockUserRepo}

	t.Run("Administrador gera senha forte para usuário alvo", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, RoleID: 1}, nil)

		mockUserRepo.EXPECT().
			GetUserByID(5).
			Return(&domain.User{ID: 5, RoleID: 3}, nil)

		mockUserRepo.EXPECT().
			UpdateUser(gomock.Any()).
			Return(nil)

		password, err := service.GenerateStrongPassword(1, 5)

		assert.NoError(t, err)
		assert.NotEmpty(t, password)
		assert.NoError(t, service.ValidatePasswordStrength(password))
	})

	t.Run("Usuário sem perfil de administrador não pode gerar senha", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(2).
			Return(&domain.User{ID: 2, RoleID: 3}, nil)

		password, err := service.GenerateStrongPassword(2, 5)

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrNoAdminPrivileges)
		assert.Empty(t, password)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "Senha forte passa na validação", password: "Senha@Forte1"},
		{name: "Senha curta é rejeitada", password: "S@f1", wantErr: "pelo menos 8 caracteres"},
		{name: "Sem maiúscula é rejeitada", password: "senha@forte1", wantErr: "letra maiúscula"},
		{name: "Sem minúscula é rejeitada", password: "SENHA@FORTE1", wantErr: "letra minúscula"},
		{name: "Sem número é rejeitada", password: "Senha@Forte", wantErr: "um número"},
		{name: "Sem caractere especial é rejeitada", password: "SenhaForte1", wantErr: "caractere especial"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestService_ManageUserVenues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{userRepo: mockUserRepo}

	t.Run("Remove os vínculos antigos e adiciona os novos", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1}, nil)

		mockUserRepo.EXPECT().
			GetUserLinkedVenues(1).
			Return([]string{"VEN001", "VEN002"}, nil)

		// VEN002 sai da lista, VEN003 entra
		mockUserRepo.EXPECT().
			UnlinkUserVenue(1, "VEN002").
			Return(nil)

		mockUserRepo.EXPECT().
			LinkUserVenue(1, "VEN003").
			Return(nil)

		err := service.ManageUserVenues(1, []string{"VEN001", "VEN003"})

		assert.NoError(t, err)
	})

	t.Run("Usuário inexistente retorna erro", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(99).
			Return(nil, nil)

		err := service.ManageUserVenues(99, []string{"VEN001"})

		assert.Error(t, err)
	})
}

func TestService_GetUserLinkedVenues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockVenueRepo := mocks.NewMockVenueRepository(ctrl)

	service := &Service{
		userRepo:  mockUserRepo,
		venueRepo: mockVenueRepo,
	}

	t.Run("Venues inativos não aparecem na listagem do usuário", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserLinkedVenues(1).
			Return([]string{"VEN001", "VEN002"}, nil)

		mockVenueRepo.EXPECT().
			GetByID("VEN001").
			Return(&domain.Venue{
				ID:              "VEN001",
				Name:            "Venue A",
				Status:          domain.VenueStatusActive,
				MetaAdAccountID: stringPtr("act_123"),
			}, nil)

		mockVenueRepo.EXPECT().
			GetByID("VEN002").
			Return(&domain.Venue{
				ID:     "VEN002",
				Name:   "Venue B",
				Status: domain.VenueStatusInactive,
			}, nil)

		venues, err := service.GetUserLinkedVenues(1)

		assert.NoError(t, err)
		assert.Len(t, venues, 1)
		assert.Equal(t, "VEN001", venues[0].ID)
		assert.Contains(t, venues[0].Platforms, domain.PlatformFacebookAds)
	})
}
