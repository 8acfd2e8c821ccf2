package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	KeyWorkouts         = "barbellPro_workouts"
	KeyConsistencyDays  = "barbellPro_consistencyBaselineDays"
	KeyConsistencyStart = "barbellPro_consistencyStartDate"
	KeyNotes            = "barbellPro_notes"
)

type doc struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	st, err := NewStorage("file:" + filepath.Join(t.TempDir(), "nested", "barbell.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "libsql", driverFor("libsql://db-user.turso.io?authToken=x"))
	assert.Equal(t, "libsql", driverFor("https://db.example.com"))
	assert.Equal(t, "libsql", driverFor("wss://db.example.com"))
	assert.Equal(t, "sqlite", driverFor("file:./local.db?cache=shared&mode=rwc"))
	assert.Equal(t, "sqlite", driverFor("/tmp/barbell.db"))

	assert.Equal(t, "./local.db", localPath("file:./local.db?cache=shared&mode=rwc"))
	assert.Equal(t, "/tmp/barbell.db", localPath("/tmp/barbell.db"))
}

func TestNewStorage_Empty(t *testing.T) {
	_, err := NewStorage("")
	assert.Error(t, err)
}

func TestStorage_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	assert.Equal(t, "sqlite", st.Driver())

	var got doc
	found, err := st.Get(ctx, KeyWorkouts, &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := doc{Name: "bench", Count: 3, Tags: []string{"a", "b"}}
	require.NoError(t, st.Set(ctx, KeyWorkouts, want))
	found, err = st.Get(ctx, KeyWorkouts, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// Overwrite.
	require.NoError(t, st.Set(ctx, KeyWorkouts, doc{Name: "squat"}))
	got = doc{}
	_, err = st.Get(ctx, KeyWorkouts, &got)
	require.NoError(t, err)
	assert.Equal(t, "squat", got.Name)

	exists, err := st.Exists(ctx, KeyWorkouts)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, st.Delete(ctx, KeyWorkouts))
	exists, err = st.Exists(ctx, KeyWorkouts)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_GetCorrupt(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	_, err := st.DB.Exec("INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)", KeyNotes, "{not json", "x")
	require.NoError(t, err)

	var got doc
	found, err := st.Get(ctx, KeyNotes, &got)
	assert.True(t, found)
	assert.Error(t, err)
}

func TestStorage_Keys(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)

	require.NoError(t, st.Set(ctx, KeyNotes, "n"))
	require.NoError(t, st.Set(ctx, KeyConsistencyDays, 4))
	keys, err := st.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{KeyConsistencyDays, KeyNotes}, keys)
}

func TestStorage_ExportImport(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			ctx := context.Background()
			src := newTestStorage(t)
			require.NoError(t, src.Set(ctx, KeyWorkouts, doc{Name: "week", Count: 1}))
			require.NoError(t, src.Set(ctx, KeyConsistencyStart, "2025-01-06"))

			var buf bytes.Buffer
			require.NoError(t, src.Export(ctx, &buf, format))

			dst := newTestStorage(t)
			require.NoError(t, dst.Set(ctx, KeyNotes, "stale"))

			n, err := dst.Import(ctx, bytes.NewReader(buf.Bytes()), format)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			keys, err := dst.Keys(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{KeyConsistencyStart, KeyWorkouts}, keys)

			var got doc
			_, err = dst.Get(ctx, KeyWorkouts, &got)
			require.NoError(t, err)
			assert.Equal(t, doc{Name: "week", Count: 1}, got)

			var start string
			_, err = dst.Get(ctx, KeyConsistencyStart, &start)
			require.NoError(t, err)
			assert.Equal(t, "2025-01-06", start)
		})
	}
}

func TestStorage_ImportRejectsBadDump(t *testing.T) {
	ctx := context.Background()
	st := newTestStorage(t)
	require.NoError(t, st.Set(ctx, KeyNotes, "keep me"))

	bad := "[[entry]]\nkey = \"barbellPro_workouts\"\nvalue = \"{broken\"\n"
	_, err := st.Import(ctx, strings.NewReader(bad), FormatTOML)
	require.Error(t, err)

	var notes string
	found, err := st.Get(ctx, KeyNotes, &notes)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "keep me", notes)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)

	assert.Equal(t, FormatYAML, FormatFromPath("dump.yaml"))
	assert.Equal(t, FormatTOML, FormatFromPath("dump.toml"))
	assert.Equal(t, FormatTOML, FormatFromPath("dump"))
}
