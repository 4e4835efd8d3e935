package imagestorage

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const horseURL = "http://upload.wikimedia.org/wikipedia/commons/horse.jpg"

func newMockedStore(t *testing.T, dir string) *ImageStore {
	t.Helper()
	client := resty.New()
	httpmock.ActivateNonDefault(client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return New(WithClient(client), WithDirectory(dir), WithExtension(".png"))
}

func TestImageStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tmp")
	s := newMockedStore(t, dir)
	httpmock.RegisterResponder("GET", horseURL, httpmock.NewBytesResponder(http.StatusOK, []byte("PNGDATA")))

	local, err := s.Save(context.Background(), "Horse", horseURL)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Horse.png"), local)

	content, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(content))
}

func TestImageStore_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	s := newMockedStore(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Horse.png"), []byte("old run, longer content"), 0o644))
	httpmock.RegisterResponder("GET", horseURL, httpmock.NewBytesResponder(http.StatusOK, []byte("new")))

	local, err := s.Save(context.Background(), "Horse", horseURL)
	require.NoError(t, err)

	content, err := os.ReadFile(local)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestImageStore_SaveErrors(t *testing.T) {
	dir := t.TempDir()
	s := newMockedStore(t, dir)
	httpmock.RegisterResponder("GET", horseURL, httpmock.NewErrorResponder(errors.New("connection reset")))

	_, err := s.Save(context.Background(), "Horse", horseURL)
	assert.Error(t, err)

	_, err = s.Save(context.Background(), "Zebra", "")
	assert.ErrorIs(t, err, ErrEmptyURL)

	_, statErr := os.Stat(filepath.Join(dir, "Zebra.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestImageStore_Path(t *testing.T) {
	s := New()
	assert.Equal(t, "tmp/Horse.png", s.Path("Horse"))
}
