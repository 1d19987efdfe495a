package config

import (
	"testing"

	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLineToken(t *testing.T) {
	t.Parallel()

	type target struct {
		Token string `json:"token" validate:"line_token"`
	}

	tests := []struct {
		name  string
		token string
		valid bool
	}{
		{"Empty", "", true},
		{"Typical", "N7xQabcdefghijklmnopqrstuvwxyz0123456789tMpA", true},
		{"Symbols", "a-b_c.d~e", true},
		{"Inner Space", "abc def", false},
		{"Trailing Newline", "abcdef\n", false},
		{"Tab", "abc\tdef", false},
	}

	v := newValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Struct(target{Token: tt.token})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCheckStruct_UsesJSONFieldNames(t *testing.T) {
	t.Parallel()

	c := newDefaultConfig()
	c.Log.MaxAge = -1

	err := checkStruct(newValidator(), &c, "AppConfig")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "log.max_age")
	assert.Contains(t, err.Error(), "min")
}

func TestCheckStruct_Valid(t *testing.T) {
	t.Parallel()

	c := newDefaultConfig()
	c.Token = "abc"
	c.Notification.StickerPackageID = 1
	c.Notification.StickerID = 2

	assert.NoError(t, checkStruct(newValidator(), &c, "AppConfig"))
}
