package restokit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadBaseURL(t *testing.T) {
	for _, baseURL := range []string{"", "not a url", "/just/a/path", "example.com"} {
		_, err := New(baseURL)
		var ce *ConfigError
		require.ErrorAs(t, err, &ce, "base URL %q", baseURL)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := New("https://api.example.com")
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, DefaultReceiveTimeout, c.receiveTimeout)
	assert.NotNil(t, c.httpClient)
	assert.NotNil(t, c.logger)
}

func TestNewStripsTrailingSlash(t *testing.T) {
	c, err := New("https://api.example.com/v1/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", c.baseURL)
}

func TestOptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"zero connect timeout", WithConnectTimeout(0)},
		{"negative connect timeout", WithConnectTimeout(-time.Second)},
		{"zero receive timeout", WithReceiveTimeout(0)},
		{"negative receive timeout", WithReceiveTimeout(-time.Second)},
		{"empty header key", WithHeader("", "x")},
		{"empty user agent", WithUserAgent("")},
		{"nil logger", WithLogger(nil)},
		{"nil http client", WithHTTPClient(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New("https://api.example.com", tc.opt)
			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{"receive timeout must be positive"}
	assert.Equal(t, "restokit: configuration error: receive timeout must be positive", err.Error())
}

func TestWithReceiveTimeoutOverridesDefault(t *testing.T) {
	c, err := New("https://api.example.com", WithReceiveTimeout(3*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.receiveTimeout)
}
