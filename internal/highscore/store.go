package highscore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/abhisek/smartkids/internal/store"
)

// RecordKey is the well-known key the high-score record is stored under.
const RecordKey = "quizAppHighScores"

// Store loads and saves the high-score record. Reads and writes are
// best-effort: failures are logged and never returned to the session.
type Store struct {
	kv     store.KV
	key    string
	logger *zap.Logger
}

// NewStore creates a Store over kv. A nil logger discards log output.
func NewStore(kv store.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		kv:     kv,
		key:    RecordKey,
		logger: logger.Named("highscore"),
	}
}

// Load returns the persisted scores. Missing, unreadable or malformed data
// yields an empty mapping.
func (s *Store) Load(ctx context.Context) Scores {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Debug("no high scores stored yet", zap.String("key", s.key))
		} else {
			s.logger.Warn("failed to read high scores, starting empty", zap.String("key", s.key), zap.Error(err))
		}
		return Scores{}
	}

	scores, err := decodeRecord(raw)
	if err != nil {
		s.logger.Warn("discarding malformed high score record", zap.String("key", s.key), zap.Error(err))
		return Scores{}
	}
	return scores
}

// Save writes the full mapping. Write errors are logged and swallowed.
func (s *Store) Save(ctx context.Context, scores Scores) {
	if scores == nil {
		scores = Scores{}
	}
	raw, err := json.Marshal(scores)
	if err != nil {
		s.logger.Error("failed to encode high scores", zap.Error(err))
		return
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		s.logger.Warn("failed to save high scores", zap.String("key", s.key), zap.Error(err))
		return
	}
	s.logger.Debug("high scores saved", zap.Int("categories", len(scores)))
}

// Reset removes the entry for categoryID, or the whole record when
// categoryID is empty. Unlike Save it reports errors, since it is an explicit
// user action.
func (s *Store) Reset(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		if err := s.kv.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("delete high scores: %w", err)
		}
		return nil
	}

	scores := s.Load(ctx)
	if _, ok := scores[categoryID]; !ok {
		return nil
	}
	delete(scores, categoryID)

	raw, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode high scores: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save high scores: %w", err)
	}
	return nil
}

// decodeRecord parses and schema-checks a persisted record.
func decodeRecord(raw []byte) (Scores, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateRecord(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var scores Scores
	if err := json.Unmarshal(raw, &scores); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if scores == nil {
		scores = Scores{}
	}
	return scores, nil
}
