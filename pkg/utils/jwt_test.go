package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {

	adminID := uuid.New()
	shopID := uuid.New()

	token, err := CreateToken(adminID, shopID, "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, adminID.String(), claims.AdminID)
	assert.Equal(t, shopID.String(), claims.ShopID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
