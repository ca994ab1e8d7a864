// internal/renamer/request_test.go
package renamer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/renamarr/pkg/release"
)

func TestExecutor_Plan(t *testing.T) {
	dir := t.TempDir()
	movie := writeFile(t, dir, "inception.2010.MKV", "")
	episode := writeFile(t, dir, "bb.s01e05.mp4", "")
	track := writeFile(t, dir, "01 song.flac", "")

	e := NewExecutor()

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "movie keeps lowercased extension",
			req:  Request{Type: release.KindMovie, Path: movie, Title: "Inception", Year: "2010"},
			want: "Inception (2010).mkv",
		},
		{
			name: "episode with title",
			req: Request{Type: release.KindTV, Path: episode, Show: "Breaking Bad", Season: 1, Episode: 5,
				EpisodeTitle: "Gray Matter"},
			want: "Breaking Bad - S01E05 - Gray Matter.mp4",
		},
		{
			name: "track",
			req:  Request{Type: release.KindMusic, Path: track, Artist: "Queen", Title: "Bohemian Rhapsody"},
			want: "Queen - Bohemian Rhapsody.flac",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Plan(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutor_PlanErrors(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "x.mkv", "")
	e := NewExecutor()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"no path", Request{Type: release.KindMovie, Title: "A", Year: "2000"}, ErrInvalidInput},
		{"missing file", Request{Type: release.KindMovie, Path: filepath.Join(dir, "nope.mkv"), Title: "A", Year: "2000"}, ErrSourceNotFound},
		{"directory", Request{Type: release.KindMovie, Path: dir, Title: "A", Year: "2000"}, ErrInvalidInput},
		{"movie without year", Request{Type: release.KindMovie, Path: file, Title: "A"}, ErrInvalidInput},
		{"title empty once sanitized", Request{Type: release.KindMovie, Path: file, Title: "???", Year: "2010"}, ErrInvalidInput},
		{"show empty once sanitized", Request{Type: release.KindTV, Path: file, Show: `<:>`, Season: 1, Episode: 1}, ErrInvalidInput},
		{"tv without season", Request{Type: release.KindTV, Path: file, Show: "S", Episode: 1}, ErrInvalidInput},
		{"tv negative episode", Request{Type: release.KindTV, Path: file, Show: "S", Season: 1, Episode: -1}, ErrInvalidInput},
		{"music without artist", Request{Type: release.KindMusic, Path: file, Title: "T"}, ErrInvalidInput},
		{"unknown type", Request{Type: "book", Path: file}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Plan(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecutor_Preview(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "heat.mkv", "")
	e := NewExecutor()
	req := Request{Type: release.KindMovie, Path: src, Title: "Heat", Year: "1995"}

	p, err := e.Preview(req)
	require.NoError(t, err)
	assert.Equal(t, Preview{
		OriginalFilename: "heat.mkv",
		NewFilename:      "Heat (1995).mkv",
		NewPath:          filepath.Join(dir, "Heat (1995).mkv"),
	}, p)

	writeFile(t, dir, "Heat (1995).mkv", "")
	p, err = e.Preview(req)
	require.NoError(t, err)
	assert.True(t, p.AlreadyExists)
}

func TestExecutor_PreviewAlreadyNamed(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "Heat (1995).mkv", "")
	e := NewExecutor()
	req := Request{Type: release.KindMovie, Path: src, Title: "Heat", Year: "1995"}

	// The file itself is not a collision, matching what Rename reports.
	p, err := e.Preview(req)
	require.NoError(t, err)
	assert.False(t, p.AlreadyExists)

	out := e.Apply(req, false)
	assert.True(t, out.Success)
	assert.Equal(t, MsgAlreadyNamed, out.Message)
}

func TestExecutor_Apply(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "heat.mkv", "heat")
	e := NewExecutor()

	r := e.Apply(Request{Type: release.KindMovie, Path: src, Title: "Heat", Year: "1995"}, false)
	require.True(t, r.Success, r.Message)
	assert.Equal(t, "heat.mkv", r.OriginalFilename)
	assert.Equal(t, "Heat (1995).mkv", r.NewFilename)
	assert.Equal(t, "heat", readFile(t, filepath.Join(dir, "Heat (1995).mkv")))

	r = e.Apply(Request{Type: release.KindMovie, Path: src, Title: "Heat", Year: "1995"}, false)
	assert.False(t, r.Success)
	assert.Equal(t, "File not found", r.Message)
	assert.ErrorIs(t, r.Err, ErrSourceNotFound)

	other := writeFile(t, dir, "other.mkv", "")
	r = e.Apply(Request{Type: release.KindMovie, Path: other, Title: "Heat"}, false)
	assert.False(t, r.Success)
	assert.Equal(t, "title and year are required", r.Message)
}

func TestExecutor_BatchIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mkv", "a")
	b := writeFile(t, dir, "b.mp3", "b")
	writeFile(t, dir, "Taken (2008).mkv", "taken")
	c := writeFile(t, dir, "c.mkv", "c")

	store := setupHistory(t)
	e := NewExecutor(WithHistory(store))

	reqs := []Request{
		{Type: release.KindMovie, Path: a, Title: "Alpha", Year: "2001"},
		{Type: release.KindMovie, Path: filepath.Join(dir, "missing.mkv"), Title: "X", Year: "2000"},
		{Type: release.KindMovie, Path: c, Title: "Taken", Year: "2008"},
		{Type: "invalid", Path: a},
		{Type: release.KindMusic, Path: b, Artist: "Band", Title: "Song"},
	}

	got := e.Batch(reqs, false)

	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.SuccessCount)
	assert.False(t, got.DryRun)
	require.Len(t, got.Results, 5)
	assert.True(t, got.Results[0].Success)
	assert.False(t, got.Results[1].Success)
	assert.ErrorIs(t, got.Results[2].Err, ErrDestinationExists)
	assert.False(t, got.Results[3].Success)
	assert.True(t, got.Results[4].Success)

	assert.Equal(t, "taken", readFile(t, filepath.Join(dir, "Taken (2008).mkv")))
	assert.FileExists(t, filepath.Join(dir, "Alpha (2001).mkv"))
	assert.FileExists(t, filepath.Join(dir, "Band - Song.mp3"))

	entries, err := store.List(HistoryFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestExecutor_BatchDryRun(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.mkv", "a")

	got := NewExecutor().Batch([]Request{
		{Type: release.KindMovie, Path: a, Title: "Alpha", Year: "2001"},
	}, true)

	assert.True(t, got.DryRun)
	assert.Equal(t, 1, got.SuccessCount)
	assert.True(t, got.Results[0].DryRun)
	assert.FileExists(t, a)
}

func TestExecutor_BatchEmpty(t *testing.T) {
	got := NewExecutor().Batch(nil, false)
	assert.Equal(t, 0, got.Total)
	assert.NotNil(t, got.Results)
}
