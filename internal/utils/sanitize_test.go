package utils_test

import (
	"testing"

	"github.com/aaravmahajanofficial/cellsync-pos/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain text", "Tela quebrada", "Tela quebrada"},
		{"Tags removed", "<b>Tela</b> quebrada", "Tela quebrada"},
		{"Script dropped", `Maria<script>alert("x")</script>`, "Maria"},
		{"Ampersand kept", "Capa & Película", "Capa & Película"},
		{"Trimmed", "  Pedro  ", "Pedro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.SanitizeText(tt.input))
		})
	}
}

func TestSanitizePtr(t *testing.T) {
	assert.Nil(t, utils.SanitizePtr(nil))

	in := "<i>Ana</i>"
	out := utils.SanitizePtr(&in)

	assert.Equal(t, "Ana", *out)
	assert.Equal(t, "<i>Ana</i>", in)
}
