package store

import (
	"context"
	"database/sql"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/traces-dev/traces-tui/internal/engine"
	"github.com/traces-dev/traces-tui/internal/util"
)

var ErrNoChange = errs.New("no change")

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
	sql  *sql.DB
}

func (d *DB) Close() error   { return d.sql.Close() }
func (d *DB) Gorm() *gorm.DB { return d.gorm }

// Open connects to DB per config.
func Open(ctx context.Context, cfg util.Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("missing DSN")
	}
	// Postgres-only
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(10)
	sdb.SetMaxIdleConns(5)
	if err := sdb.PingContext(ctx); err != nil {
		return nil, err
	}
	return &DB{gorm: gdb, sql: sdb}, nil
}

// WithTx executes fn within a database transaction.
func (d *DB) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.gorm.WithContext(ctx).Transaction(fn)
}

// TimelineRecord is the library row shape for list views.
type TimelineRecord struct {
	ID              uuid.UUID
	Title           string
	Decision        string
	CreatedAt       time.Time
	VideoURL        string
	ThumbnailURL    string
	Style           string
	Tone            string
	SequelAvailable bool
	PathCount       int
}

// PathRecord mirrors one persisted decision path, ordered by Idx.
type PathRecord struct {
	ID          uuid.UUID
	TimelineID  uuid.UUID
	Idx         int
	Title       string
	Probability float64
	Outcome     string
	Indicator   string
	KeyMoments  []string
}

// Settings holds the persisted wizard defaults.
type Settings struct {
	Style          string
	Tone           string
	TimelineLength float64
	PathCount      int
}

// TimelineRepo persists accepted timelines.
type TimelineRepo struct{ db *DB }

func NewTimelineRepo(db *DB) *TimelineRepo { return &TimelineRepo{db: db} }

func (r *TimelineRepo) Insert(ctx context.Context, tx *gorm.DB, t engine.Timeline) error {
	if tx == nil {
		tx = r.db.gorm.WithContext(ctx)
	}
	err := tx.Exec(`INSERT INTO timelines(id, title, decision, created_at, video_url, thumbnail_url, style, tone, sequel_available)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		t.ID, t.Title, t.Decision, t.CreatedAt, t.VideoURL, t.ThumbnailURL, string(t.Style), string(t.Tone), t.SequelAvailable,
	).Error
	return wrap(err, "insert timeline")
}

func (r *TimelineRepo) List(ctx context.Context, limit int) ([]TimelineRecord, error) {
	if limit <= 0 {
		limit = 40
	}
	rows, err := r.db.gorm.WithContext(ctx).Raw(`SELECT t.id, t.title, t.decision, t.created_at, t.video_url, t.thumbnail_url, t.style, t.tone, t.sequel_available,
		(SELECT COUNT(*) FROM decision_paths p WHERE p.timeline_id = t.id) AS path_count
		FROM timelines t ORDER BY t.created_at DESC LIMIT ?`, limit).Rows()
	if err != nil {
		return nil, wrap(err, "list timelines")
	}
	defer rows.Close()
	var out []TimelineRecord
	for rows.Next() {
		var rec TimelineRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Decision, &rec.CreatedAt, &rec.VideoURL, &rec.ThumbnailURL, &rec.Style, &rec.Tone, &rec.SequelAvailable, &rec.PathCount); err != nil {
			return nil, wrap(err, "scan timeline")
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PathRepo persists the ordered decision paths of a timeline.
type PathRepo struct{ db *DB }

func NewPathRepo(db *DB) *PathRepo { return &PathRepo{db: db} }

func (r *PathRepo) BulkInsert(ctx context.Context, tx *gorm.DB, timelineID uuid.UUID, paths []engine.DecisionPath) error {
	for i, p := range paths {
		momentsB, _ := json.Marshal(p.KeyMoments)
		if err := tx.Exec(`INSERT INTO decision_paths(id, timeline_id, idx, title, probability, outcome, indicator, key_moments)
			VALUES (?,?,?,?,?,?,?,?)`,
			p.ID, timelineID, i, p.Title, p.Probability, p.Outcome, string(p.Indicator), momentsB,
		).Error; err != nil {
			return wrap(err, "insert decision path")
		}
	}
	return nil
}

func (r *PathRepo) ListForTimeline(ctx context.Context, timelineID uuid.UUID) ([]PathRecord, error) {
	rows, err := r.db.gorm.WithContext(ctx).Raw(`SELECT id, timeline_id, idx, title, probability, outcome, indicator, key_moments
		FROM decision_paths WHERE timeline_id = ? ORDER BY idx`, timelineID).Rows()
	if err != nil {
		return nil, wrap(err, "list paths")
	}
	defer rows.Close()
	var out []PathRecord
	for rows.Next() {
		var rec PathRecord
		var momentsB []byte
		if err := rows.Scan(&rec.ID, &rec.TimelineID, &rec.Idx, &rec.Title, &rec.Probability, &rec.Outcome, &rec.Indicator, &momentsB); err != nil {
			return nil, wrap(err, "scan path")
		}
		if len(momentsB) > 0 {
			_ = json.Unmarshal(momentsB, &rec.KeyMoments)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SaveTimeline inserts a timeline and its paths transactionally.
func SaveTimeline(ctx context.Context, db *DB, t engine.Timeline) error {
	tr := NewTimelineRepo(db)
	pr := NewPathRepo(db)
	return db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tr.Insert(ctx, tx, t); err != nil {
			return err
		}
		return pr.BulkInsert(ctx, tx, t.ID, t.Paths)
	})
}

// ActivityRepo keeps the community feed snapshot.
type ActivityRepo struct{ db *DB }

func NewActivityRepo(db *DB) *ActivityRepo { return &ActivityRepo{db: db} }

func (r *ActivityRepo) BulkInsert(ctx context.Context, tx *gorm.DB, items []engine.ActivityItem) error {
	for _, it := range items {
		if err := tx.Exec(`INSERT INTO activity_items(id, username, action, subject, created_at, likes) VALUES (?,?,?,?,?,?)
			ON CONFLICT (id) DO NOTHING`,
			it.ID, it.Username, it.Action, it.Subject, it.CreatedAt, it.Likes,
		).Error; err != nil {
			return wrap(err, "insert activity item")
		}
	}
	return nil
}

func (r *ActivityRepo) ListRecent(ctx context.Context, limit int) ([]engine.ActivityItem, error) {
	if limit <= 0 {
		limit = 40
	}
	rows, err := r.db.gorm.WithContext(ctx).Raw(`SELECT id, username, action, subject, created_at, likes
		FROM activity_items ORDER BY created_at DESC LIMIT ?`, limit).Rows()
	if err != nil {
		return nil, wrap(err, "list activity")
	}
	defer rows.Close()
	var out []engine.ActivityItem
	for rows.Next() {
		var it engine.ActivityItem
		if err := rows.Scan(&it.ID, &it.Username, &it.Action, &it.Subject, &it.CreatedAt, &it.Likes); err != nil {
			return nil, wrap(err, "scan activity")
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// WisdomRepo keeps the wisdom snapshot.
type WisdomRepo struct{ db *DB }

func NewWisdomRepo(db *DB) *WisdomRepo { return &WisdomRepo{db: db} }

func (r *WisdomRepo) BulkInsert(ctx context.Context, tx *gorm.DB, items []engine.WisdomItem) error {
	for _, it := range items {
		if err := tx.Exec(`INSERT INTO wisdom_items(id, quote, source, rating, saves) VALUES (?,?,?,?,?)
			ON CONFLICT (id) DO NOTHING`,
			it.ID, it.Quote, it.Source, it.Rating, it.Saves,
		).Error; err != nil {
			return wrap(err, "insert wisdom item")
		}
	}
	return nil
}

func (r *WisdomRepo) ListTop(ctx context.Context, limit int) ([]engine.WisdomItem, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.gorm.WithContext(ctx).Raw(`SELECT id, quote, source, rating, saves
		FROM wisdom_items ORDER BY rating DESC LIMIT ?`, limit).Rows()
	if err != nil {
		return nil, wrap(err, "list wisdom")
	}
	defer rows.Close()
	var out []engine.WisdomItem
	for rows.Next() {
		var it engine.WisdomItem
		if err := rows.Scan(&it.ID, &it.Quote, &it.Source, &it.Rating, &it.Saves); err != nil {
			return nil, wrap(err, "scan wisdom")
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// SettingsRepo persists the singleton wizard defaults.
type SettingsRepo struct{ db *DB }

func NewSettingsRepo(db *DB) *SettingsRepo { return &SettingsRepo{db: db} }

func (r *SettingsRepo) Upsert(ctx context.Context, s Settings) error {
	err := r.db.gorm.WithContext(ctx).Exec(`INSERT INTO settings(id, style, tone, timeline_length, path_count) VALUES (1,?,?,?,?)
		ON CONFLICT (id) DO UPDATE SET style=EXCLUDED.style, tone=EXCLUDED.tone, timeline_length=EXCLUDED.timeline_length, path_count=EXCLUDED.path_count`,
		s.Style, s.Tone, s.TimelineLength, s.PathCount).Error
	return wrap(err, "upsert settings")
}

func (r *SettingsRepo) Get(ctx context.Context) (Settings, error) {
	row := r.db.gorm.WithContext(ctx).Raw(`SELECT style, tone, timeline_length, path_count FROM settings WHERE id = 1`).Row()
	var s Settings
	if err := row.Scan(&s.Style, &s.Tone, &s.TimelineLength, &s.PathCount); err != nil {
		return Settings{}, wrap(err, "get settings")
	}
	return s, nil
}

// SummaryCacheRepo caches rendered timeline markdown keyed by content hash.
type SummaryCacheRepo struct{ db *DB }

func NewSummaryCacheRepo(db *DB) *SummaryCacheRepo { return &SummaryCacheRepo{db: db} }

func (r *SummaryCacheRepo) Get(ctx context.Context, tx *gorm.DB, hash []byte) (string, bool, error) {
	if tx == nil {
		tx = r.db.gorm.WithContext(ctx)
	}
	row := tx.Raw(`SELECT markdown FROM summary_cache WHERE hash = ?`, hash).Row()
	var md string
	if err := row.Scan(&md); err != nil {
		if errs.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, wrap(err, "get cached summary")
	}
	return md, true, nil
}

func (r *SummaryCacheRepo) Put(ctx context.Context, tx *gorm.DB, hash []byte, md string) error {
	if tx == nil {
		tx = r.db.gorm.WithContext(ctx)
	}
	err := tx.Exec(`INSERT INTO summary_cache(hash, markdown) VALUES (?,?) ON CONFLICT (hash) DO UPDATE SET markdown=EXCLUDED.markdown`, hash, md).Error
	return wrap(err, "put cached summary")
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
