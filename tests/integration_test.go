//go:build integration

package tests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/cardbook/cmd/cardbook/tui"
	"github.com/ruminaider/cardbook/internal/appdata"
	"github.com/ruminaider/cardbook/internal/commands"
	"github.com/ruminaider/cardbook/internal/config"
	"github.com/ruminaider/cardbook/internal/filter"
	"github.com/ruminaider/cardbook/internal/gallery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDataDir writes the starter config and card data into a temp dir.
func setupDataDir(t *testing.T) (cfgFile, dataFile string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	_, err := commands.Init(dir, false)
	require.NoError(t, err)
	return filepath.Join(dir, "config.yaml"), filepath.Join(dir, "cards.yaml")
}

// setCount rewrites the count of one card in the data file.
func setCount(t *testing.T, dataFile, key string, count float64) {
	t.Helper()
	data, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	f, err := appdata.Parse(data)
	require.NoError(t, err)
	f.Counts[key] = count
	out, err := appdata.Marshal(f)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dataFile, out, 0644))
}

func TestInitThenList(t *testing.T) {
	cfgFile, _ := setupDataDir(t)

	cfg, err := config.Load(cfgFile, nil)
	require.NoError(t, err)

	result, err := commands.List(commands.ListOptions{
		DataFile:    cfg.DataFile,
		Taxonomy:    filter.DefaultTaxonomy(),
		Gallery:     cfg.GalleryOptions(),
		BonusType:   filter.CategoryExp,
		PassiveOnly: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Cards)

	out := tui.RenderGallery(result.Pipeline, "", false)
	assert.Contains(t, out, "Frog")
	assert.Contains(t, out, "Blunder Hills Set")
	assert.NotContains(t, out, "Yum Yum Desert")
}

func TestWatchedStoreDrivesGallery(t *testing.T) {
	_, dataFile := setupDataDir(t)

	store, err := appdata.Open(dataFile, nil)
	require.NoError(t, err)
	updates, unsubscribe := store.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = store.Watch(ctx) }()
	time.Sleep(50 * time.Millisecond) // let the watcher register

	p := gallery.NewPipeline(filter.DefaultTaxonomy(), gallery.DefaultOptions())
	var m tea.Model = tui.NewModel(p, store, updates)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Contains(t, m.View(), "12 / 50")

	setCount(t, dataFile, "frog", 30)

	select {
	case <-updates:
	case <-time.After(5 * time.Second):
		t.Fatal("no store notification after the data file changed")
	}
	// A reload can observe the file mid-write; wait for the final content.
	require.Eventually(t, func() bool {
		for _, c := range store.Snapshot().Cards {
			if c.Key == "frog" {
				return c.Count == 30
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)
	m, _ = m.Update(tui.CardsUpdatedMsg{Snapshot: store.Snapshot()})
	assert.Contains(t, m.View(), "30 / 50")

	// Filters survive the data update.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	assert.Contains(t, m.View(), tui.FilteringNotice)
	m, _ = m.Update(tui.TimerMsg{Timer: gallery.Timer{Kind: gallery.TimerIndicator, Seq: 1}})
	view := m.View()
	assert.Contains(t, view, "Frog")
	assert.False(t, strings.Contains(view, "Bored Bean"))
}
