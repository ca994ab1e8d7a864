package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/renamarr/internal/renamer"
)

// runCLI executes a fresh command tree and returns its stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("TMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "renamarr dev\n", out)
}

func TestParse_SingleJSON(t *testing.T) {
	cfg := writeConfig(t, "")

	out, err := runCLI(t, "--config", cfg, "--json", "parse", "Breaking.Bad.S01E02.720p.HDTV.x264-LOL.mkv")
	require.NoError(t, err)

	var got struct {
		Filename  string         `json:"filename"`
		MediaType string         `json:"media_type"`
		Type      string         `json:"type"`
		Detected  map[string]any `json:"detected_info"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "video", got.MediaType)
	assert.Equal(t, "tv", got.Type)
	assert.Equal(t, "Breaking Bad", got.Detected["show_name"])
	assert.EqualValues(t, 1, got.Detected["season"])
	assert.EqualValues(t, 2, got.Detected["episode"])
}

func TestParse_Multiple(t *testing.T) {
	cfg := writeConfig(t, "")

	out, err := runCLI(t, "--config", cfg, "--json", "parse", "Inception.2010.1080p.BluRay.mkv", "notes.txt")
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "movie", got[0]["type"])
	assert.Equal(t, map[string]any{"name": "Inception", "year": "2010"}, got[0]["detected_info"])

	assert.Equal(t, "none", got[1]["media_type"])
	assert.NotContains(t, got[1], "type")
	assert.NotContains(t, got[1], "detected_info")
}

func TestParse_Human(t *testing.T) {
	cfg := writeConfig(t, "")

	out, err := runCLI(t, "--config", cfg, "parse", "Inception.2010.1080p.BluRay.mkv")
	require.NoError(t, err)
	assert.Contains(t, out, "Type:      movie")
	assert.Contains(t, out, "Detected:  Inception (2010)")
}

func TestParse_File(t *testing.T) {
	cfg := writeConfig(t, "")
	list := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, os.WriteFile(list, []byte("# comment\nA.S01E01.mkv\n\n  B.2001.mkv\n"), 0644))

	names, err := readNameFile(list)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.S01E01.mkv", "B.2001.mkv"}, names)

	out, err := runCLI(t, "--config", cfg, "--json", "parse", "--file", list)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)
}

func TestParse_NoInput(t *testing.T) {
	_, err := runCLI(t, "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestScan(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	touch(t, dir, "The.Office.S02E03.720p.mkv")
	touch(t, dir, "song.flac")
	touch(t, dir, "notes.txt")

	out, err := runCLI(t, "--config", cfg, "--json", "scan", dir)
	require.NoError(t, err)

	var got struct {
		Directory string `json:"directory"`
		Mode      string `json:"mode"`
		Count     int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, dir, got.Directory)
	assert.Equal(t, "auto", got.Mode)
	assert.Equal(t, 2, got.Count)

	out, err = runCLI(t, "--config", cfg, "scan", "--mode", "tv", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "The Office S02E03")
	assert.Contains(t, out, "1 file(s)")

	_, err = runCLI(t, "--config", cfg, "scan", "--mode", "books", dir)
	require.Error(t, err)
}

func TestScan_MediaRootFromConfig(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Heat.1995.mkv")
	cfg := writeConfig(t, "[media]\nroot = \""+filepath.ToSlash(dir)+"\"\nmode = \"movies\"\n")

	out, err := runCLI(t, "--config", cfg, "scan")
	require.NoError(t, err)
	assert.Contains(t, out, "Heat (1995)")
}

func TestFormat(t *testing.T) {
	cfg := writeConfig(t, "")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"movie", []string{"format", "movie", "--title", "Blade Runner: 2049", "--year", "2017", "--ext", "mkv"}, "Blade Runner 2049 (2017).mkv"},
		{"tv", []string{"format", "tv", "--show", "The Office", "--season", "2", "--episode", "3", "--ext", ".mkv"}, "The Office - S02E03.mkv"},
		{"tv titled", []string{"format", "tv", "--show", "Lost", "--season", "1", "--episode", "4", "--episode-title", "Walkabout", "--ext", "mp4"}, "Lost - S01E04 - Walkabout.mp4"},
		{"music", []string{"format", "music", "--artist", "AC/DC", "--title", "Thunderstruck", "--ext", "mp3"}, "ACDC - Thunderstruck.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{"--config", cfg}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestFormat_CustomTemplate(t *testing.T) {
	cfg := writeConfig(t, "[naming]\nmovie = \"{title} [{year}].{ext}\"\n")

	out, err := runCLI(t, "--config", cfg, "--json", "format", "movie", "--title", "Heat", "--year", "1995", "--ext", "mkv")
	require.NoError(t, err)
	assert.JSONEq(t, `{"filename": "Heat [1995].mkv"}`, out)
}

func TestFormat_Errors(t *testing.T) {
	cfg := writeConfig(t, "")

	_, err := runCLI(t, "--config", cfg, "format", "tv", "--show", "Lost", "--season", "0", "--episode", "1", "--ext", "mkv")
	require.Error(t, err)

	_, err = runCLI(t, "--config", cfg, "format", "movie", "--title", "Heat", "--ext", "mkv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestRename(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	src := touch(t, dir, "heat.1995.mkv")

	out, err := runCLI(t, "--config", cfg, "rename", "--dry-run", src, "Heat (1995).mkv")
	require.NoError(t, err)
	assert.Contains(t, out, renamer.MsgDryRun)
	assert.FileExists(t, src)

	out, err = runCLI(t, "--config", cfg, "rename", src, "Heat (1995).mkv")
	require.NoError(t, err)
	assert.Contains(t, out, renamer.MsgRenamed)
	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(dir, "Heat (1995).mkv"))
}

func TestRename_DryRunMissingFile(t *testing.T) {
	cfg := writeConfig(t, "")
	missing := filepath.Join(t.TempDir(), "gone.mkv")

	out, err := runCLI(t, "--config", cfg, "rename", "--dry-run", missing, "New.mkv")
	require.ErrorIs(t, err, renamer.ErrSourceNotFound)
	assert.Contains(t, out, renamer.MsgNotFound)
	assert.NotContains(t, out, renamer.MsgDryRun)
}

func TestRename_NeverOverwrites(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	src := touch(t, dir, "a.mkv")
	dst := touch(t, dir, "b.mkv")

	out, err := runCLI(t, "--config", cfg, "--json", "rename", src, "b.mkv")
	require.ErrorIs(t, err, renamer.ErrDestinationExists)

	var got renamer.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Success)
	assert.Equal(t, renamer.MsgDestExists, got.Message)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "b.mkv", string(data))
}

func TestBatchAndHistory(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	cfg := writeConfig(t, "[history]\npath = \""+filepath.ToSlash(dbPath)+"\"\n")

	a := touch(t, dir, "a.mkv")
	b := touch(t, dir, "b.mp3")

	reqs := []map[string]any{
		{"type": "movie", "filepath": a, "title": "Heat", "year": "1995"},
		{"type": "music", "filepath": b, "artist": "Ivy", "title": "Edge"},
		{"type": "tv", "filepath": filepath.Join(dir, "missing.mkv"), "show_name": "Lost", "season": 1, "episode": 1},
	}
	data, err := json.Marshal(reqs)
	require.NoError(t, err)
	reqFile := filepath.Join(t.TempDir(), "requests.json")
	require.NoError(t, os.WriteFile(reqFile, data, 0644))

	out, err := runCLI(t, "--config", cfg, "batch", reqFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 renames failed")
	assert.Contains(t, out, "2 of 3 succeeded")
	assert.FileExists(t, filepath.Join(dir, "Heat (1995).mkv"))
	assert.FileExists(t, filepath.Join(dir, "Ivy - Edge.mp3"))

	out, err = runCLI(t, "--config", cfg, "--json", "history")
	require.NoError(t, err)

	var hist struct {
		Items []renamer.HistoryEntry `json:"items"`
		Total int                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &hist))
	assert.Equal(t, 2, hist.Total)

	out, err = runCLI(t, "--config", cfg, "--json", "history", "--type", "music")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &hist))
	require.Equal(t, 1, hist.Total)
	assert.Equal(t, filepath.Join(dir, "Ivy - Edge.mp3"), hist.Items[0].NewPath)
}

func TestBatch_DryRunFromStdin(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	src := touch(t, dir, "x.mkv")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(`{"files": [{"type": "movie", "filepath": "` + filepath.ToSlash(src) + `", "title": "X", "year": "2000"}]}`))
	root.SetArgs([]string{"--config", cfg, "batch", "--dry-run", "-"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "(dry run)")
	assert.FileExists(t, src)
}

func TestReadRequests_Errors(t *testing.T) {
	_, err := readRequests(strings.NewReader("  "), "-")
	require.Error(t, err)

	_, err = readRequests(strings.NewReader("[{"), "-")
	require.Error(t, err)

	_, err = readRequests(nil, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestHistory_NotConfigured(t *testing.T) {
	cfg := writeConfig(t, "")

	_, err := runCLI(t, "--config", cfg, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history not configured")
}

func TestSearch_NotConfigured(t *testing.T) {
	cfg := writeConfig(t, "")

	_, err := runCLI(t, "--config", cfg, "search", "movie", "Alien")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TMDB API key not configured")

	_, err = runCLI(t, "--config", cfg, "search", "episode", "abc", "1", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid show id")
}

func TestConfigInitAndTest(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := filepath.Join(t.TempDir(), "renamarr", "config.toml")

	out, err := runCLI(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = runCLI(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = runCLI(t, "config", "init", "--force", path)
	require.NoError(t, err)

	out, err = runCLI(t, "config", "test", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration valid!")
	assert.Contains(t, out, "TMDB:        disabled")
}

func TestConfigTest_Invalid(t *testing.T) {
	cfg := writeConfig(t, "[server]\nport = 70000\n[tmdb]\napi_key = \"${RENAMARR_TEST_UNSET_KEY:?TMDB key required}\"\n")

	out, err := runCLI(t, "config", "test", cfg)
	require.Error(t, err)
	assert.Contains(t, out, "Missing environment variables:")
	assert.Contains(t, out, "RENAMARR_TEST_UNSET_KEY")
	assert.Contains(t, out, "server.port")
}
