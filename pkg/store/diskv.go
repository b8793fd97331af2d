package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/entropy/pkg/journal"
	"tableflip.dev/entropy/pkg/session"
	"tableflip.dev/entropy/pkg/settings"
	"tableflip.dev/entropy/pkg/task"
)

// Persistence is the durable mirror of the in-memory core. All writes are
// best effort: the caller catches and logs failures, in-memory state stays
// authoritative, and the next successful write reconciles.
type Persistence interface {
	LoadLists(ctx context.Context) []task.List
	LoadTasks(ctx context.Context) []*task.Task
	LoadLogs(ctx context.Context) []*journal.LogEntry
	LoadSettings() settings.Settings
	LoadSession() (session.State, bool)

	SaveList(l task.List) error
	SaveTask(t *task.Task) error
	AppendLog(e *journal.LogEntry) error
	SaveSettings(s settings.Settings) error
	SaveSession(s session.State) error
	ClearSession() error

	EnsureDefaultLists() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Row families map to one diskv directory each.
const (
	bucketTasks   = "tasks"
	bucketLogs    = "logs"
	bucketLists   = "lists"
	bucketSession = "session"

	sessionKey   = "current"
	settingsFile = ".settings.json"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadTasks(ctx context.Context) []*task.Task {
	all := make([]*task.Task, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketTasks {
			continue
		}
		t := &task.Task{}
		if err := p.read(key, t); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		if t.ID == "" {
			t.ID = idOf(key)
		}
		all = append(all, t)
	}
	// Durable read order: sortOrder ASC, createdAt ASC.
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].SortOrder != all[j].SortOrder {
			return all[i].SortOrder < all[j].SortOrder
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt.Time)
	})
	return all
}

func (p *persistence) LoadLogs(ctx context.Context) []*journal.LogEntry {
	all := make([]*journal.LogEntry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketLogs {
			continue
		}
		e := &journal.LogEntry{}
		if err := p.read(key, e); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.Before(all[j].Timestamp.Time)
	})
	return all
}

func (p *persistence) LoadLists(ctx context.Context) []task.List {
	all := make([]task.List, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketLists {
			continue
		}
		l := task.List{}
		if err := p.read(key, &l); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		all = append(all, l)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if li, lj := listRank(all[i].Type), listRank(all[j].Type); li != lj {
			return li < lj
		}
		return all[i].ID < all[j].ID
	})
	return all
}

// listRank keeps the sidebar order stable: inbox, user lists, done, trash.
func listRank(t task.ListType) int {
	switch t {
	case task.ListTypeInbox:
		return 0
	case task.ListTypeUser:
		return 1
	case task.ListTypeDone:
		return 2
	default:
		return 3
	}
}

func (p *persistence) LoadSession() (session.State, bool) {
	s := session.State{}
	if err := p.read(toKey(bucketSession, sessionKey), &s); err != nil {
		return session.State{}, false
	}
	if s.Mode == "" || s.Mode == session.ModeIdle {
		return session.State{}, false
	}
	return s, true
}

func (p *persistence) SaveTask(t *task.Task) error {
	if t == nil || t.ID == "" {
		return errors.New("store: task id required")
	}
	return p.write(toKey(bucketTasks, t.ID), t)
}

func (p *persistence) AppendLog(e *journal.LogEntry) error {
	if e == nil || e.ID == "" {
		return errors.New("store: log id required")
	}
	return p.write(toKey(bucketLogs, e.ID), e)
}

func (p *persistence) SaveList(l task.List) error {
	if l.ID == "" {
		return errors.New("store: list id required")
	}
	return p.write(toKey(bucketLists, l.ID), l)
}

func (p *persistence) SaveSession(s session.State) error {
	return p.write(toKey(bucketSession, sessionKey), s)
}

func (p *persistence) ClearSession() error {
	err := p.d.Erase(toKey(bucketSession, sessionKey))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// EnsureDefaultLists seeds the default lists the first time the store is
// used. Existing lists are left alone.
func (p *persistence) EnsureDefaultLists() error {
	existing := p.LoadLists(context.Background())
	if len(existing) > 0 {
		return nil
	}
	for _, l := range task.DefaultLists() {
		if err := p.SaveList(l); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) LoadSettings() settings.Settings {
	data, err := os.ReadFile(p.settingsPath())
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: load settings: %v\n", err)
		}
		return settings.Default()
	}
	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode settings: %v\n", err)
		return settings.Default()
	}
	return settings.FromMap(m)
}

// SaveSettings writes the settings map atomically (tmp + rename) so a crash
// never leaves a half-written file behind.
func (p *persistence) SaveSettings(s settings.Settings) error {
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.ToMap(), "", "  ")
	if err != nil {
		return err
	}
	path := p.settingsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (p *persistence) settingsPath() string {
	return filepath.Join(p.basePath, settingsFile)
}

func (p *persistence) read(key string, target interface{}) error {
	val, err := p.d.Read(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(val, target)
}

func (p *persistence) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

// Keys are `bucket-id`. Ids may themselves contain dashes (uuids), so only
// the first dash is structural.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{Path: []string{}, FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     []string{parts[0]},
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func toKey(bucket, id string) string {
	return fmt.Sprintf("%s-%s", bucket, id)
}

func bucketOf(key string) string {
	return strings.SplitN(key, "-", 2)[0]
}

func idOf(key string) string {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[1]
}
