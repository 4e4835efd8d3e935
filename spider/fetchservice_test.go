package spider

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/dszqbsm/animalcrawler/limiter"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

const testURL = "https://en.wikipedia.org/wiki/List_of_animal_names"

func setupHTTPMock(t *testing.T) {
	t.Helper()
	httpmock.Activate()
	t.Cleanup(httpmock.DeactivateAndReset)
}

func TestBrowserFetch_Get(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", testURL, func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "animalcrawler-test", req.Header.Get("User-Agent"))
		return httpmock.NewStringResponse(http.StatusOK, "<html><body>ok</body></html>"), nil
	})

	f := NewFetchService(BrowserFetchType, WithUserAgent("animalcrawler-test"), WithLogger(zap.NewNop()))
	body, err := f.Get(context.Background(), testURL)

	require.NoError(t, err)
	assert.Equal(t, "<html><body>ok</body></html>", string(body))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestFetch_NonOKStatusIsNotAnError(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", testURL, httpmock.NewStringResponder(http.StatusNotFound, "missing"))

	for _, typ := range []FetchType{BaseFetchType, BrowserFetchType} {
		f := NewFetchService(typ)
		body, err := f.Get(context.Background(), testURL)
		require.NoError(t, err)
		assert.Equal(t, "missing", string(body))
	}
}

func TestFetch_TransportError(t *testing.T) {
	setupHTTPMock(t)

	httpmock.RegisterResponder("GET", testURL, httpmock.NewErrorResponder(errors.New("dial tcp: lookup failed")))

	f := NewFetchService(BrowserFetchType)
	body, err := f.Get(context.Background(), testURL)

	assert.Error(t, err)
	assert.Nil(t, body)
	assert.Equal(t, 1, httpmock.GetTotalCallCount(), "no retry")
}

func TestFetch_LimiterCanceled(t *testing.T) {
	setupHTTPMock(t)

	l := limiter.New(limiter.Config{EventCount: 1, EventDur: 3600})
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetchService(BrowserFetchType, WithLimit(l))
	_, err := f.Get(ctx, testURL)
	assert.Error(t, err)
	assert.Zero(t, httpmock.GetTotalCallCount())
}

func TestFetch_DecodesLatin1(t *testing.T) {
	setupHTTPMock(t)

	encoded, err := charmap.ISO8859_1.NewEncoder().String("Café")
	require.NoError(t, err)

	httpmock.RegisterResponder("GET", testURL, func(req *http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(http.StatusOK, encoded)
		resp.Header.Set("Content-Type", "text/html; charset=iso-8859-1")
		return resp, nil
	})

	body, err := NewFetchService(BaseFetchType).Get(context.Background(), testURL)
	require.NoError(t, err)
	assert.Equal(t, "Café", string(body))
}

func TestDeterminEncoding_ShortBody(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("<p>short</p>"))
	e := DeterminEncoding(r, "", zap.NewNop())
	assert.NotNil(t, e)
}
