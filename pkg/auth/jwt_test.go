package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
)

const (
	testSecret = "test-secret"
	testUserID = "7f1b0c9e-4d7a-4a57-9a3e-1f2d3c4b5a69"
)

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		identity       Identity
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			identity:       Identity{UserID: testUserID, Role: RoleClient},
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			identity:       Identity{UserID: testUserID, Role: RoleAdmin},
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.identity, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name         string
		tokenString  string
		setup        func() string
		expectError  bool
		expectedRole string
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: testUserID, Role: RoleAdmin}, time.Now().Add(time.Hour))
				return token
			},
			expectedRole: RoleAdmin,
		},
		{
			name: "Missing role defaults to client",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: testUserID}, time.Now().Add(time.Hour))
				return token
			},
			expectedRole: RoleClient,
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: testUserID}, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Wrong secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT(Identity{UserID: testUserID}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Subject is not a uuid",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Identity{UserID: "42"}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Foreign issuer",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
					UserID: testUserID,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "someone-else",
					},
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, testUserID, claims.UserID)
				assert.Equal(t, tt.expectedRole, claims.Role)
			}
		})
	}
}
