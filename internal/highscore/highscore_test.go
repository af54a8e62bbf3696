package highscore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/smartkids/internal/store"
)

var testNow = time.Date(2026, 10, 14, 15, 4, 5, 0, time.Local)

func TestRecordIfBetter(t *testing.T) {
	existing := Scores{"math": {Score: 5, AchievedOn: "2026-01-01"}}

	tests := []struct {
		name        string
		scores      Scores
		category    string
		score       int
		total       int
		wantUpdated bool
		wantScore   int
		wantDate    string
	}{
		{"lower score unchanged", existing, "math", 3, 10, false, 5, "2026-01-01"},
		{"equal score unchanged", existing, "math", 5, 10, false, 5, "2026-01-01"},
		{"higher score updates", existing, "math", 7, 10, true, 7, "2026-10-14"},
		{"first entry", existing, "science", 2, 10, true, 2, "2026-10-14"},
		{"first entry at zero", Scores{}, "science", 0, 10, true, 0, "2026-10-14"},
		{"nil mapping", nil, "math", 4, 10, true, 4, "2026-10-14"},
		{"score above total rejected", existing, "math", 11, 10, false, 5, "2026-01-01"},
		{"negative score rejected", existing, "math", -1, 10, false, 5, "2026-01-01"},
		{"zero total rejected", existing, "math", 7, 0, false, 5, "2026-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, updated := RecordIfBetter(tt.scores, tt.category, tt.score, tt.total, testNow)
			assert.Equal(t, tt.wantUpdated, updated)

			entry, ok := got[tt.category]
			if tt.wantUpdated || tt.scores[tt.category] != (Entry{}) {
				require.True(t, ok, "expected entry for %q", tt.category)
				assert.Equal(t, tt.wantScore, entry.Score)
				assert.Equal(t, tt.wantDate, entry.AchievedOn)
			}
		})
	}
}

func TestRecordIfBetter_DoesNotMutateInput(t *testing.T) {
	in := Scores{"math": {Score: 5, AchievedOn: "2026-01-01"}}
	out, updated := RecordIfBetter(in, "math", 9, 10, testNow)
	require.True(t, updated)

	assert.Equal(t, 5, in["math"].Score, "input mapping must not change")
	assert.Equal(t, 9, out["math"].Score)
}

func TestRecordIfBetter_NeverDecreases(t *testing.T) {
	scores := Scores{}
	best := 0
	for _, s := range []int{3, 1, 8, 8, 2, 10, 0, 9} {
		scores, _ = RecordIfBetter(scores, "logic", s, 10, testNow)
		if s > best {
			best = s
		}
		assert.Equal(t, best, scores.Best("logic"))
	}
}

func observedStore(kv store.KV) (*Store, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewStore(kv, zap.New(core)), logs
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := observedStore(kv)
	ctx := context.Background()

	want := Scores{
		"math":  {Score: 9, AchievedOn: "2026-10-14"},
		"logic": {Score: 4, AchievedOn: "2026-10-01"},
	}
	s.Save(ctx, want)

	assert.Equal(t, want, s.Load(ctx))

	raw, err := kv.Get(ctx, RecordKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"math":{"score":9,"date":"2026-10-14"},"logic":{"score":4,"date":"2026-10-01"}}`, string(raw))
}

func TestStore_LoadMissing(t *testing.T) {
	s, logs := observedStore(store.NewMemoryKV())

	got := s.Load(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len(), "missing record is not a warning")
}

func TestStore_LoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{not json`},
		{"null", `null`},
		{"array", `[1,2,3]`},
		{"score wrong type", `{"math":{"score":"nine","date":"2026-10-14"}}`},
		{"negative score", `{"math":{"score":-1,"date":"2026-10-14"}}`},
		{"fractional score", `{"math":{"score":1.5,"date":"2026-10-14"}}`},
		{"missing date", `{"math":{"score":3}}`},
		{"entry not object", `{"math":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemoryKV()
			require.NoError(t, kv.Put(context.Background(), RecordKey, []byte(tt.raw)))
			s, logs := observedStore(kv)

			got := s.Load(context.Background())
			assert.Empty(t, got)
			assert.Equal(t, 1, logs.FilterMessage("discarding malformed high score record").Len())
		})
	}
}

func TestStore_LoadEmptyObject(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Put(context.Background(), RecordKey, []byte(`{}`)))
	s, logs := observedStore(kv)

	assert.Empty(t, s.Load(context.Background()))
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

// failingKV returns err from every call.
type failingKV struct {
	err error
}

func (f failingKV) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Put(context.Context, string, []byte) error  { return f.err }
func (f failingKV) Delete(context.Context, string) error       { return f.err }

func TestStore_ReadFailureIsRecoverable(t *testing.T) {
	s, logs := observedStore(failingKV{err: errors.New("disk on fire")})

	got := s.Load(context.Background())
	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessage("failed to read high scores, starting empty").Len())
}

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	s, logs := observedStore(failingKV{err: errors.New("read-only filesystem")})

	assert.NotPanics(t, func() {
		s.Save(context.Background(), Scores{"math": {Score: 1, AchievedOn: "2026-10-14"}})
	})
	assert.Equal(t, 1, logs.FilterMessage("failed to save high scores").Len())
}

func TestStore_Reset(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := observedStore(kv)
	ctx := context.Background()

	s.Save(ctx, Scores{
		"math":  {Score: 9, AchievedOn: "2026-10-14"},
		"logic": {Score: 4, AchievedOn: "2026-10-01"},
	})

	require.NoError(t, s.Reset(ctx, "math"))
	assert.Equal(t, Scores{"logic": {Score: 4, AchievedOn: "2026-10-01"}}, s.Load(ctx))

	require.NoError(t, s.Reset(ctx, "unknown"))

	require.NoError(t, s.Reset(ctx, ""))
	_, err := kv.Get(ctx, RecordKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_ResetReportsErrors(t *testing.T) {
	s, _ := observedStore(failingKV{err: errors.New("boom")})
	assert.Error(t, s.Reset(context.Background(), ""))
}

func TestScoresClone(t *testing.T) {
	var nilScores Scores
	c := nilScores.Clone()
	assert.NotNil(t, c)
	assert.Empty(t, c)

	orig := Scores{"a": {Score: 1}}
	c = orig.Clone()
	c["a"] = Entry{Score: 2}
	assert.Equal(t, 1, orig["a"].Score)
}
