package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/garlicgarrison/pawn-ai/board"
	"github.com/garlicgarrison/pawn-ai/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--quiet"))

	err := cmd.Execute()
	return out.String(), err
}

func writeBoard(t *testing.T, dir string, b board.Board) string {
	t.Helper()
	path := filepath.Join(dir, "board.txt")
	require.NoError(t, b.Save(path))
	return path
}

func TestUsage(t *testing.T) {
	out, err := execute(t, "", "board.txt", "move.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
}

func TestChooseHard(t *testing.T) {
	dir := t.TempDir()
	boardPath := writeBoard(t, dir, board.Initial())
	movePath := filepath.Join(dir, "move.txt")
	require.NoError(t, os.WriteFile(movePath, []byte("stale content"), 0644))

	out, err := execute(t, "", boardPath, movePath, "HARD")
	require.NoError(t, err)
	assert.Contains(t, out, "AI (hard) chose move: d7d6")

	data, err := os.ReadFile(movePath)
	require.NoError(t, err)
	assert.Equal(t, "d7d6", string(data))
}

func TestChooseMedium(t *testing.T) {
	dir := t.TempDir()
	b := board.Parse(`
........
........
........
........
...p....
..R.Q...
........
........
`)
	movePath := filepath.Join(dir, "move.txt")

	_, err := execute(t, "", writeBoard(t, dir, b), movePath, "medium")
	require.NoError(t, err)

	data, err := os.ReadFile(movePath)
	require.NoError(t, err)
	assert.Equal(t, "d4e3", string(data))
}

func TestChooseUnknownDifficultyIsSeededRandom(t *testing.T) {
	dir := t.TempDir()
	boardPath := writeBoard(t, dir, board.Initial())

	read := func(label string) string {
		movePath := filepath.Join(dir, label+".txt")
		_, err := execute(t, "", boardPath, movePath, label, "--seed", "3")
		require.NoError(t, err)
		data, err := os.ReadFile(movePath)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, read("easy"), read("expert"))
}

func TestChooseNoMoves(t *testing.T) {
	dir := t.TempDir()
	b := board.Parse(`
....k...
........
........
........
........
........
PPPPPPPP
....K...
`)
	movePath := filepath.Join(dir, "move.txt")

	out, err := execute(t, "", writeBoard(t, dir, b), movePath, "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "No valid moves available")

	_, err = os.Stat(movePath)
	assert.True(t, os.IsNotExist(err))
}

func TestChooseMissingBoard(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "", filepath.Join(dir, "missing.txt"), filepath.Join(dir, "move.txt"), "easy")
	assert.Error(t, err)
}

func TestChooseConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pawnai.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("difficulty: nope\n"), 0644))

	_, err := execute(t, "", writeBoard(t, dir, board.Initial()), filepath.Join(dir, "move.txt"), "easy", "--config", cfgPath)
	assert.Error(t, err)
}

func TestPlayFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.json")

	out, err := execute(t, "e2e4\nzz\nd2d4\n",
		"play", "-d", "hard",
		"--board", filepath.Join(dir, "board.txt"),
		"--move", filepath.Join(dir, "move.txt"),
		"--history", historyPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "AI (hard) is thinking...")
	assert.Contains(t, out, "AI (hard) chose move: d7d6")
	assert.Contains(t, out, "Invalid input.")

	data, err := os.ReadFile(filepath.Join(dir, "move.txt"))
	require.NoError(t, err)
	assert.Len(t, data, 4)

	var h game.History
	data, err = os.ReadFile(historyPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Equal(t, "hard", h.Difficulty)
	require.Len(t, h.Moves, 4)
	assert.Equal(t, "e2e4", h.Moves[0].Notation)
	assert.Equal(t, "d7d6", h.Moves[1].Notation)
	assert.Equal(t, "d2d4", h.Moves[2].Notation)
}

func TestPlayDirectUndo(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.json")

	out, err := execute(t, "u\ne2e4\nu\ne7e5\n",
		"play", "--direct", "-d", "medium", "--history", historyPath,
	)
	require.NoError(t, err)
	assert.Contains(t, out, "No moves to undo.")
	assert.Contains(t, out, "AI (medium) chose move: d7d5")
	assert.Contains(t, out, "Undid move: d7d5")
	assert.Contains(t, out, "Undid move: e2e4")
	assert.Contains(t, out, "Invalid move.")

	var h game.History
	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &h))
	assert.Empty(t, h.Moves)
}

func TestRandomThenChoose(t *testing.T) {
	dir := t.TempDir()
	boardPath := filepath.Join(dir, "board.txt")
	movePath := filepath.Join(dir, "move.txt")

	_, err := execute(t, "", "random", boardPath, "--seed", "11", "--pieces", "../config/pieces.yaml")
	require.NoError(t, err)

	b, err := board.Load(boardPath)
	require.NoError(t, err)
	require.Len(t, b, board.Size)
	assert.Equal(t, 8, b.Count('p'))
	assert.Equal(t, 5, b.Count('P'))

	out, err := execute(t, "", boardPath, movePath, "hard")
	require.NoError(t, err)
	if strings.Contains(out, "No valid moves available") {
		return
	}

	data, err := os.ReadFile(movePath)
	require.NoError(t, err)
	assert.Len(t, data, 4)
}
