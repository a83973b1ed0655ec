package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSimulate_DefaultStock(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "-------- day 0 --------\nname, sellIn, quality\n+5 Dexterity Vest, 10, 20\n")
	assert.Contains(t, out, "-------- day 1 --------\nname, sellIn, quality\n+5 Dexterity Vest, 9, 19\nAged Brie, 1, 1\n")
	assert.NotContains(t, out, "day 2")
}

func TestSimulate_CustomStock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stock.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items":[{"name":"Conjured Mana Cake","sell_in":1,"quality":10}]}`), 0o644))

	out, err := execute(t, "--stock", path, "--days", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		"-------- day 0 --------", "name, sellIn, quality", "Conjured Mana Cake, 1, 10", "",
		"-------- day 1 --------", "name, sellIn, quality", "Conjured Mana Cake, 0, 8", "",
		"-------- day 2 --------", "name, sellIn, quality", "Conjured Mana Cake, 0, 4",
	}, lines)
}

func TestSimulate_Errors(t *testing.T) {
	_, err := execute(t, "--days", "-1")
	assert.Error(t, err)

	_, err = execute(t, "extra")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: []\n"), 0o644))
	_, err = execute(t, "--stock", path)
	assert.Error(t, err)
}

func TestSimulate_BattleCries(t *testing.T) {
	out, err := execute(t, "--battle-cries", "--seed", "7", "--days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sulfuras, Hand of Ragnaros, 0, 80")
}
