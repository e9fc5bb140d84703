package utils_test

import (
	"testing"

	appErrors "github.com/aaravmahajanofficial/cellsync-pos/internal/errors"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	validate := validator.New()

	t.Run("Valid login request", func(t *testing.T) {
		err := utils.ValidateStruct(validate, &models.LoginRequest{Email: "ana@email.com", Password: "secret"})
		assert.NoError(t, err)
	})

	t.Run("Missing fields", func(t *testing.T) {
		err := utils.ValidateStruct(validate, &models.LoginRequest{})

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		assert.Contains(t, appErr.Detail, "Field Email is required")
		assert.Contains(t, appErr.Detail, "Field Password is required")
	})

	t.Run("Invalid email", func(t *testing.T) {
		err := utils.ValidateStruct(validate, &models.LoginRequest{Email: "not-an-email", Password: "x"})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Field Email must be a valid email address", appErr.Detail)
	})

	t.Run("Oneof message", func(t *testing.T) {
		err := utils.ValidateStruct(validate, &models.CreateFinanceEntryRequest{
			Kind:        "lucro",
			Description: "x",
			Amount:      models.Cents(100),
			Date:        "02/12/2025",
			Category:    "Vendas",
		})

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, "Field Kind must be one of [receita despesa]", appErr.Detail)
	})
}
