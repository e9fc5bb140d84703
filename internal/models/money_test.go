package models_test

import (
	"encoding/json"
	"testing"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Money
		wantErr bool
	}{
		{"25", 2500, false},
		{"25.5", 2550, false},
		{"25,50", 2550, false},
		{"R$ 30.00", 3000, false},
		{"1.234,56", 123456, false},
		{"1,234.56", 123456, false},
		{"0.005", 1, false},
		{"  7.10 ", 710, false},
		{"", 0, true},
		{"abc", 0, true},
		{"92233720368547758.07", 9223372036854775807, false},
		{"-92233720368547758.08", -9223372036854775808, false},
		{"92233720368547758.08", 0, true},
		{"99999999999999999999", 0, true},
		{"184467440737095516.16", 0, true},
		{"1e30", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseMoney(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTendered(t *testing.T) {
	assert.Equal(t, models.Cents(3000), models.ParseTendered("30"))
	assert.Equal(t, models.Money(0), models.ParseTendered("3o"))
	assert.Equal(t, models.Money(0), models.ParseTendered(""))
	assert.Equal(t, models.Money(0), models.ParseTendered("99999999999999999999"))
}

func TestMoneyFormat(t *testing.T) {
	assert.Equal(t, "25.00", models.Cents(2500).String())
	assert.Equal(t, "R$ 0.01", models.Cents(1).Format("R$"))
	assert.Equal(t, "-4.70", models.Cents(-470).Format(""))
}

func TestMoneyJSON(t *testing.T) {
	t.Run("Encodes as a number", func(t *testing.T) {
		data, err := json.Marshal(map[string]models.Money{"total": models.Cents(2500)})

		require.NoError(t, err)
		assert.JSONEq(t, `{"total":25.00}`, string(data))
	})

	t.Run("Decodes numbers and strings", func(t *testing.T) {
		var item models.CatalogItem

		require.NoError(t, json.Unmarshal([]byte(`{"id":1,"nome":"Capinha","preco":"29.90","estoque":3}`), &item))
		assert.Equal(t, models.Cents(2990), item.Price)

		require.NoError(t, json.Unmarshal([]byte(`{"preco":6999}`), &item))
		assert.Equal(t, models.Cents(699900), item.Price)
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		var m models.Money

		assert.Error(t, json.Unmarshal([]byte(`"dez"`), &m))
	})

	t.Run("Rejects amounts out of range", func(t *testing.T) {
		m := models.Cents(100)

		assert.Error(t, json.Unmarshal([]byte(`1e30`), &m))
		assert.Error(t, json.Unmarshal([]byte(`"184467440737095516.16"`), &m))
		assert.Equal(t, models.Cents(100), m)
	})
}

func TestMoneyYAML(t *testing.T) {
	var file models.CatalogFile

	err := yaml.Unmarshal([]byte("items:\n  - id: 1\n    name: Capinha\n    price: \"29,90\"\n    available: 3\n"), &file)

	require.NoError(t, err)
	require.Len(t, file.Items, 1)
	assert.Equal(t, models.Cents(2990), file.Items[0].Price)

	err = yaml.Unmarshal([]byte("items:\n  - id: 1\n    price: 1e30\n"), &file)
	assert.Error(t, err)
}

func TestCartLineSubtotal(t *testing.T) {
	line := models.CartLine{ItemID: 1, UnitPrice: models.Cents(1000), Quantity: 3}

	assert.Equal(t, models.Cents(3000), line.Subtotal())
}
