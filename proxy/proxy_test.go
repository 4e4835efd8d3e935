package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinProxySwitcher(t *testing.T) {
	p, err := RoundRobinProxySwitcher("http://127.0.0.1:8888", "http://127.0.0.1:8889")
	require.NoError(t, err)

	var hosts []string
	for i := 0; i < 3; i++ {
		u, err := p(nil)
		require.NoError(t, err)
		hosts = append(hosts, u.Host)
	}
	assert.Equal(t, []string{"127.0.0.1:8888", "127.0.0.1:8889", "127.0.0.1:8888"}, hosts)
}

func TestRoundRobinProxySwitcher_Empty(t *testing.T) {
	p, err := RoundRobinProxySwitcher()
	assert.ErrorIs(t, err, ErrEmptyProxyList)
	assert.Nil(t, p)
}

func TestRoundRobinProxySwitcher_BadURL(t *testing.T) {
	_, err := RoundRobinProxySwitcher("http://[::1")
	assert.Error(t, err)
}
