package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Fryer Maintenance Guide", "fryer-maintenance-guide"},
		{"diacritics", "Règlage Friteuse", "reglage-friteuse"},
		{"punctuation runs", "POS -- troubleshooting!!", "pos-troubleshooting"},
		{"leading and trailing", " (draft) cleaning steps ", "draft-cleaning-steps"},
		{"numbers", "Error code E42 reset", "error-code-e42-reset"},
		{"only symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}
