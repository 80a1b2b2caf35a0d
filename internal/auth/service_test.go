package auth

import (
	"testing"
	"time"

	"airline-crew-backend/internal/config"
	"airline-crew-backend/internal/database/models"
	apperrors "airline-crew-backend/internal/errors"
	"airline-crew-backend/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// AuthServiceTestSuite tests token validation and user syncing
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	cfg := &config.Config{JWTSecret: testSecret}
	svc, err := NewAuthService(cfg, suite.mockUserRepo)
	suite.Require().NoError(err)
	suite.service = svc
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// signToken builds an HS256 token with the given claims merged over defaults
func (suite *AuthServiceTestSuite) signToken(overrides jwt.MapClaims) string {
	claims := jwt.MapClaims{
		"sub":                uuid.New().String(),
		"preferred_username": "odispatcher",
		"email":              "odispatcher@example.com",
		"name":               "Olena Dispatcher",
		"exp":                time.Now().Add(time.Hour).Unix(),
		"iat":                time.Now().Unix(),
	}
	for k, v := range overrides {
		claims[k] = v
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *AuthServiceTestSuite) TestValidateToken() {
	token := suite.signToken(jwt.MapClaims{
		"realm_access": map[string]any{"roles": []string{"dispatcher"}},
	})

	claims, err := suite.service.ValidateToken(token)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "odispatcher", claims.PreferredUsername)
	assert.Equal(suite.T(), models.RoleDispatcher, claims.Role())
}

func (suite *AuthServiceTestSuite) TestValidateTokenExpired() {
	token := suite.signToken(jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})

	_, err := suite.service.ValidateToken(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateTokenMissingExpiry() {
	claims := jwt.MapClaims{"sub": uuid.New().String()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateToken(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateTokenWrongSignature() {
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	suite.Require().NoError(err)

	_, err = suite.service.ValidateToken(token)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestValidateTokenGarbage() {
	_, err := suite.service.ValidateToken("not.a.token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

func (suite *AuthServiceTestSuite) TestRoleResolution() {
	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected models.UserRole
	}{
		{
			name:     "admin realm role",
			claims:   jwt.MapClaims{"realm_access": map[string]any{"roles": []string{"admin"}}},
			expected: models.RoleAdmin,
		},
		{
			name: "admin wins over dispatcher",
			claims: jwt.MapClaims{
				"realm_access": map[string]any{"roles": []string{"dispatcher", "admin"}},
			},
			expected: models.RoleAdmin,
		},
		{
			name: "dispatcher from client roles",
			claims: jwt.MapClaims{
				"resource_access": map[string]any{
					"crew-api": map[string]any{"roles": []string{"DISPATCHER"}},
				},
			},
			expected: models.RoleDispatcher,
		},
		{
			name:     "no matching roles defaults to viewer",
			claims:   jwt.MapClaims{"realm_access": map[string]any{"roles": []string{"offline_access"}}},
			expected: models.RoleViewer,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			token := suite.signToken(tt.claims)

			claims, err := suite.service.ValidateToken(token)

			assert.NoError(suite.T(), err)
			assert.Equal(suite.T(), tt.expected, claims.Role())
		})
	}
}

func (suite *AuthServiceTestSuite) TestSyncUserCreatesOnFirstLogin() {
	subject := uuid.New()
	claims := &Claims{
		PreferredUsername: "odispatcher",
		Email:             "odispatcher@example.com",
		Name:              "Olena Dispatcher",
	}
	claims.Subject = subject.String()
	claims.RealmAccess.Roles = []string{"dispatcher"}

	suite.mockUserRepo.EXPECT().GetBySubject(subject).Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.Equal(suite.T(), subject, u.Subject)
		assert.Equal(suite.T(), models.RoleDispatcher, u.Role)
		u.ID = 5
		return nil
	})

	user, err := suite.service.SyncUser(claims)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(5), user.ID)
}

func (suite *AuthServiceTestSuite) TestSyncUserUpdatesChangedRole() {
	subject := uuid.New()
	claims := &Claims{Email: "odispatcher@example.com", Name: "Olena Dispatcher"}
	claims.Subject = subject.String()
	claims.RealmAccess.Roles = []string{"admin"}

	existing := &models.User{
		BaseModel: models.BaseModel{ID: 5},
		Subject:   subject,
		Username:  "odispatcher",
		Email:     "odispatcher@example.com",
		FullName:  "Olena Dispatcher",
		Role:      models.RoleDispatcher,
	}
	suite.mockUserRepo.EXPECT().GetBySubject(subject).Return(existing, nil)
	suite.mockUserRepo.EXPECT().Update(gomock.Any()).Return(nil)

	user, err := suite.service.SyncUser(claims)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleAdmin, user.Role)
}

func (suite *AuthServiceTestSuite) TestSyncUserUnchangedSkipsUpdate() {
	subject := uuid.New()
	claims := &Claims{Email: "odispatcher@example.com", Name: "Olena Dispatcher"}
	claims.Subject = subject.String()
	claims.RealmAccess.Roles = []string{"dispatcher"}

	existing := &models.User{
		BaseModel: models.BaseModel{ID: 5},
		Subject:   subject,
		Email:     "odispatcher@example.com",
		FullName:  "Olena Dispatcher",
		Role:      models.RoleDispatcher,
	}
	suite.mockUserRepo.EXPECT().GetBySubject(subject).Return(existing, nil)

	_, err := suite.service.SyncUser(claims)

	assert.NoError(suite.T(), err)
}

func (suite *AuthServiceTestSuite) TestSyncUserRejectsMalformedSubject() {
	claims := &Claims{}
	claims.Subject = "not-a-uuid"

	_, err := suite.service.SyncUser(claims)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidToken)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
