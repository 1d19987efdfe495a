package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/darkkaiser/line-notifier/internal/notify"
	apperrors "github.com/darkkaiser/line-notifier/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	c := newDefaultConfig()
	assert.Equal(t, notify.DefaultEndpoint, c.Endpoint)
	assert.Equal(t, DefaultLogMaxAge, c.Log.MaxAge)
	assert.Empty(t, c.Token)
	assert.Zero(t, c.HTTP.Timeout)
	assert.NoError(t, c.validate())
}

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{"LINE_NOTIFIER_DEBUG", "debug"},
		{"LINE_NOTIFIER_TOKEN", "token"},
		{"LINE_NOTIFIER_HTTP__TIMEOUT", "http.timeout"},
		{"LINE_NOTIFIER_LOG__MAX_AGE", "log.max_age"},
		{"LINE_NOTIFIER_NOTIFICATION__STICKER_PACKAGE_ID", "notification.sticker_package_id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, normalizeEnvKey(tt.in))
		})
	}
}

func TestLoadWithFile(t *testing.T) {
	t.Parallel()

	imagePath := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0o644))

	path := writeConfigFile(t, fmt.Sprintf(`{
		"debug": true,
		"token": "N7xQabcdefgtMpA",
		"endpoint": "http://127.0.0.1:8080/api/notify",
		"http": { "timeout": "15s" },
		"log": { "dir": "logs", "max_age": 7 },
		"notification": {
			"image_thumbnail": "https://example.com/t.jpg",
			"image_fullsize": "https://example.com/f.jpg",
			"image_file": %q,
			"sticker_package_id": 446,
			"sticker_id": 1988
		}
	}`, imagePath))

	c, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.True(t, c.Debug)
	assert.Equal(t, "N7xQabcdefgtMpA", c.Token)
	assert.Equal(t, "http://127.0.0.1:8080/api/notify", c.Endpoint)
	assert.Equal(t, 15*time.Second, c.HTTP.Timeout)
	assert.Equal(t, LogConfig{Dir: "logs", MaxAge: 7}, c.Log)
	assert.Equal(t, NotificationConfig{
		ImageThumbnail:   "https://example.com/t.jpg",
		ImageFullsize:    "https://example.com/f.jpg",
		ImageFile:        imagePath,
		StickerPackageID: 446,
		StickerID:        1988,
	}, c.Notification)
}

func TestLoadWithFile_DefaultsFillMissingValues(t *testing.T) {
	t.Parallel()

	c, err := LoadWithFile(writeConfigFile(t, `{"token": "abc"}`))
	require.NoError(t, err)

	assert.Equal(t, "abc", c.Token)
	assert.Equal(t, notify.DefaultEndpoint, c.Endpoint)
	assert.Equal(t, DefaultLogMaxAge, c.Log.MaxAge)
	assert.False(t, c.Debug)
}

func TestLoadWithFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		missing     bool
		expectType  apperrors.ErrorType
		errContains string
	}{
		{
			name:       "File Not Found",
			missing:    true,
			expectType: apperrors.NotFound,
		},
		{
			name:       "Malformed JSON",
			content:    `{"token": `,
			expectType: apperrors.ParsingFailed,
		},
		{
			name:        "Unknown Field",
			content:     `{"tokn": "abc"}`,
			expectType:  apperrors.InvalidInput,
			errContains: "tokn",
		},
		{
			name:        "Token With Whitespace",
			content:     `{"token": "abc def"}`,
			expectType:  apperrors.InvalidInput,
			errContains: "공백",
		},
		{
			name:        "Endpoint Not HTTP",
			content:     `{"endpoint": "ftp://example.com/notify"}`,
			expectType:  apperrors.InvalidInput,
			errContains: "endpoint",
		},
		{
			name:       "Empty Endpoint",
			content:    `{"endpoint": ""}`,
			expectType: apperrors.InvalidInput,
		},
		{
			name:       "Negative Sticker ID",
			content:    `{"notification": {"sticker_id": -1}}`,
			expectType: apperrors.InvalidInput,
		},
		{
			name:       "Negative Timeout",
			content:    `{"http": {"timeout": "-1s"}}`,
			expectType: apperrors.InvalidInput,
		},
		{
			name:       "Invalid Timeout",
			content:    `{"http": {"timeout": "soon"}}`,
			expectType: apperrors.InvalidInput,
		},
		{
			name:        "Missing Default Image File",
			content:     `{"notification": {"image_file": "/nonexistent/line-notifier/photo.png"}}`,
			expectType:  apperrors.InvalidInput,
			errContains: "notification.image_file",
		},
		{
			name:        "Invalid Thumbnail URL",
			content:     `{"notification": {"image_thumbnail": "not a url"}}`,
			expectType:  apperrors.InvalidInput,
			errContains: "image_thumbnail",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "missing.json")
			if !tt.missing {
				path = writeConfigFile(t, tt.content)
			}

			c, err := LoadWithFile(path)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, apperrors.Is(err, tt.expectType), "expected %s, got %v", tt.expectType, err)
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestLoadWithFile_ImageFileWithSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	imagePath := filepath.Join(t.TempDir(), "photo.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0o644))

	// 경로는 전송 시와 동일하게 공백을 포함한 그대로 검사된다.
	_, err := LoadWithFile(writeConfigFile(t, fmt.Sprintf(`{"notification": {"image_file": %q}}`, " "+imagePath)))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Contains(t, err.Error(), "notification.image_file")

	c, err := LoadWithFile(writeConfigFile(t, fmt.Sprintf(`{"notification": {"image_file": %q}}`, "file://"+imagePath)))
	require.NoError(t, err)
	assert.Equal(t, "file://"+imagePath, c.Notification.ImageFile)
}

func TestLoadWithFile_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `{"token": "from-file", "http": {"timeout": "5s"}}`)

	t.Setenv("LINE_NOTIFIER_TOKEN", "from-env")
	t.Setenv("LINE_NOTIFIER_DEBUG", "true")
	t.Setenv("LINE_NOTIFIER_HTTP__TIMEOUT", "30s")
	t.Setenv("LINE_NOTIFIER_LOG__MAX_AGE", "3")
	t.Setenv("LINE_NOTIFIER_NOTIFICATION__STICKER_ID", "1988")

	c, err := LoadWithFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", c.Token)
	assert.True(t, c.Debug)
	assert.Equal(t, 30*time.Second, c.HTTP.Timeout)
	assert.Equal(t, 3, c.Log.MaxAge)
	assert.Equal(t, 1988, c.Notification.StickerID)
}

func TestLoadWithFile_UnknownEnvKey(t *testing.T) {
	t.Setenv("LINE_NOTIFIER_UNKNOWN_OPTION", "1")

	_, err := LoadWithFile(writeConfigFile(t, `{}`))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
}

func TestLoad_DefaultFileIsOptional(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, notify.DefaultEndpoint, c.Endpoint)
}

func TestLoad_ReadsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFilename), []byte(`{"token": "abc"}`), 0o600))
	chdir(t, dir)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", c.Token)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
