package services

import (
	"context"
	"testing"
	"ymc/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(client *mockYouTubeClient) *ChannelResolver {
	return NewChannelResolver(client, &testutil.MockLogger{})
}

func TestResolve_ChannelIDForm(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	id, err := r.Resolve(context.Background(), "https://www.youtube.com/channel/UC1234567890")
	require.NoError(t, err)
	assert.Equal(t, "UC1234567890", id)
	assert.Empty(t, client.searchQueries)
}

func TestResolve_ChannelIDFormWithTrailingPath(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	id, err := r.Resolve(context.Background(), "https://www.youtube.com/channel/UCabc/videos")
	require.NoError(t, err)
	assert.Equal(t, "UCabc", id)
}

func TestResolve_HandleForm(t *testing.T) {
	client := &mockYouTubeClient{searchResult: "UCresolved"}
	r := newTestResolver(client)

	id, err := r.Resolve(context.Background(), "https://www.youtube.com/@somecreator")
	require.NoError(t, err)
	assert.Equal(t, "UCresolved", id)
	require.Len(t, client.searchQueries, 1)
	assert.Equal(t, "somecreator", client.searchQueries[0])
}

func TestResolve_HandleFormWithTrailingPath(t *testing.T) {
	client := &mockYouTubeClient{searchResult: "UCresolved"}
	r := newTestResolver(client)

	id, err := r.Resolve(context.Background(), "https://www.youtube.com/@somecreator/videos")
	require.NoError(t, err)
	assert.Equal(t, "UCresolved", id)
	require.Len(t, client.searchQueries, 1)
	assert.Equal(t, "somecreator", client.searchQueries[0])
}

func TestResolve_HandleNotFound(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/@unknowncreator")
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Len(t, client.searchQueries, 1)
}

func TestResolve_LegacyCustomURL(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/c/SomeChannel")
	assert.ErrorIs(t, err, ErrUnsupportedURLFormat)
	assert.Empty(t, client.searchQueries, "legacy URLs must not trigger network calls")
}

func TestResolve_LegacyUserURL(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/user/SomeUser")
	assert.ErrorIs(t, err, ErrUnsupportedURLFormat)
	assert.Empty(t, client.searchQueries, "legacy URLs must not trigger network calls")
}

func TestResolve_MalformedURL(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "not a url at all")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestResolve_NoRecognizableForm(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/watch?v=abc123")
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestResolve_EmptyChannelID(t *testing.T) {
	client := &mockYouTubeClient{}
	r := newTestResolver(client)

	_, err := r.Resolve(context.Background(), "https://www.youtube.com/channel/")
	assert.ErrorIs(t, err, ErrInvalidURL)
}
