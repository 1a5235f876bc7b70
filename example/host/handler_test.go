package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	desktopapi "github.com/zed-industries/desktop-api-bindings"
)

func TestExampleHostSettings(t *testing.T) {
	h := newExampleHost(t.TempDir(), zerolog.Nop())
	ctx := context.Background()

	got, err := h.GetSettingsProperty(ctx, desktopapi.NewGetSettingsPropertyRequest("theme"))
	require.NoError(t, err)
	assert.Equal(t, `"system"`, got.GetJsonBlob())
	assert.True(t, got.GetIsDefault())

	upd, err := desktopapi.NewUpdateSettingsPropertyRequest("theme", "dark")
	require.NoError(t, err)
	require.NoError(t, h.UpdateSettingsProperty(ctx, upd))

	got, err = h.GetSettingsProperty(ctx, desktopapi.NewGetSettingsPropertyRequest("theme"))
	require.NoError(t, err)
	var theme string
	require.NoError(t, got.Decode(&theme))
	assert.Equal(t, "dark", theme)
	assert.False(t, got.GetIsDefault())

	clear, err := desktopapi.NewUpdateSettingsPropertyRequest("theme", nil)
	require.NoError(t, err)
	require.NoError(t, h.UpdateSettingsProperty(ctx, clear))
	got, err = h.GetSettingsProperty(ctx, desktopapi.NewGetSettingsPropertyRequest("theme"))
	require.NoError(t, err)
	assert.True(t, got.GetIsDefault())

	got, err = h.GetSettingsProperty(ctx, desktopapi.NewGetSettingsPropertyRequest("missing"))
	require.NoError(t, err)
	assert.ErrorIs(t, got.Decode(new(any)), desktopapi.ErrSettingUnset)

	assert.Error(t, h.UpdateSettingsProperty(ctx, &desktopapi.UpdateSettingsPropertyRequest{Key: desktopapi.Ptr("x"), Value: desktopapi.Ptr("{")}))
}

func TestExampleHostFiles(t *testing.T) {
	h := newExampleHost(t.TempDir(), zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, h.WriteFile(ctx, desktopapi.TextFile("a/b.txt", "one\n")))
	require.NoError(t, h.WriteFile(ctx, &desktopapi.WriteFileRequest{Path: "a/b.txt", Data: []byte("two\n"), Append: true}))

	text, err := h.ReadFile(ctx, &desktopapi.ReadFileRequest{Path: "a/b.txt"})
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", text.GetText())

	bin, err := h.ReadFile(ctx, &desktopapi.ReadFileRequest{Path: "/a/b.txt", IsBinaryFile: true})
	require.NoError(t, err)
	assert.Nil(t, bin.Text)
	assert.Equal(t, []byte("one\ntwo\n"), bin.Data)

	_, err = h.ReadFile(ctx, &desktopapi.ReadFileRequest{Path: "../outside.txt"})
	assert.ErrorContains(t, err, "escapes")
	_, err = h.ReadFile(ctx, &desktopapi.ReadFileRequest{Path: "nope.txt"})
	assert.Error(t, err)
}

func TestExampleHostPositionWindow(t *testing.T) {
	h := newExampleHost(t.TempDir(), zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name           string
		anchor         desktopapi.Point
		size           desktopapi.Size
		above, clipped bool
	}{
		{"fits below", desktopapi.Point{X: 10, Y: 10}, desktopapi.Size{Width: 100, Height: 100}, false, false},
		{"flips above", desktopapi.Point{X: 10, Y: 1000}, desktopapi.Size{Width: 100, Height: 300}, true, false},
		{"too tall", desktopapi.Point{X: 10, Y: 500}, desktopapi.Size{Width: 100, Height: 1000}, false, true},
		{"off the right edge", desktopapi.Point{X: 1900, Y: 10}, desktopapi.Size{Width: 100, Height: 100}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anchor, size := tt.anchor, tt.size
			resp, err := h.PositionWindow(ctx, &desktopapi.PositionWindowRequest{Anchor: &anchor, Size: &size})
			require.NoError(t, err)
			assert.Equal(t, tt.above, resp.GetIsAbove())
			assert.Equal(t, tt.clipped, resp.GetIsClipped())
		})
	}

	_, err := h.PositionWindow(ctx, &desktopapi.PositionWindowRequest{})
	assert.Error(t, err)
}
