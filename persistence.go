package bfsearch

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	gorm "gorm.io/gorm"
)

// PersistenceConfig locates an optional solution-history database —
// spec.md's distillation has no such flag, SPEC_FULL.md §6.1 supplements
// it from the original implementation's intent. Grounded directly on the
// teacher's PersistenceConfig/NewPersistence (same pragma/option DSN
// assembly), generalized from a fixed `Name` to an arbitrary `--db` path.
type PersistenceConfig struct {
	Path          string
	SQLitePragmas []string
	SQLiteOptions []string
}

type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

// SearchSession records one invocation of the search engine against a
// target.
type SearchSession struct {
	ID        uint `gorm:"primarykey"`
	Target    string
	Beta      float64
	Gamma     float64
	MaxSteps  uint64
	StartedAt time.Time
	Solutions []SolutionRecord `gorm:"foreignKey:SessionID"`
}

// SolutionRecord is the persisted form of a Solution (driver.go's Solution
// is the in-memory value; this is its durable shape). Named distinctly so
// the gorm model and the driver's return type never collide on name.
type SolutionRecord struct {
	ID          uint `gorm:"primarykey"`
	SessionID   uint
	Num         int
	Program     string
	Instrs      int
	DemoOutput  string
	DemoSteps   uint64
	Halted      bool
	EmittedAt   time.Time
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	var pragmas strings.Builder
	pragmaCount := len(config.SQLitePragmas) - 1
	for i, prag := range config.SQLitePragmas {
		pragmas.WriteString(fmt.Sprintf("_pragma=%s", prag))
		if i < pragmaCount {
			pragmas.WriteRune('&')
		}
	}

	var options strings.Builder
	optionCount := len(config.SQLiteOptions) - 1
	for i, opt := range config.SQLiteOptions {
		options.WriteString(opt)
		if i < optionCount {
			options.WriteRune('&')
		}
	}

	var dsn strings.Builder
	dsn.WriteString(filepath.Clean(config.Path))
	if pragmas.Len() > 0 {
		dsn.WriteRune('?')
		dsn.WriteString(pragmas.String())
		if options.Len() > 0 {
			dsn.WriteRune('&')
			dsn.WriteString(options.String())
		}
	} else if options.Len() > 0 {
		dsn.WriteRune('?')
		dsn.WriteString(options.String())
	}

	db, err := gorm.Open(sqlite.Open(dsn.String()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err := p.initialize(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Persistence) initialize() error {
	return p.DB.AutoMigrate(&SearchSession{}, &SolutionRecord{})
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// StartSession records a new search run.
func (p *Persistence) StartSession(session *SearchSession) (uint, error) {
	if result := p.DB.Create(session); result.Error != nil {
		return 0, fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}
	return session.ID, nil
}

// RecordSolution persists one emitted solution against its session.
func (p *Persistence) RecordSolution(rec *SolutionRecord) error {
	if result := p.DB.Create(rec); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}
	return nil
}

// PreviousPrograms returns the canonical program strings already emitted
// for target across prior sessions, so the driver's in-memory dedup set
// can be seeded and honor the distinct-solution requirement across process
// restarts (SPEC_FULL.md §6.1).
func (p *Persistence) PreviousPrograms(target string) ([]string, error) {
	var sessionIDs []uint
	if result := p.DB.Model(&SearchSession{}).Where("target = ?", target).Pluck("id", &sessionIDs); result.Error != nil {
		return nil, fmt.Errorf("Failed to look up prior sessions: %w", result.Error)
	}
	if len(sessionIDs) == 0 {
		return nil, nil
	}

	var programs []string
	if result := p.DB.Model(&SolutionRecord{}).Where("session_id IN ?", sessionIDs).Pluck("program", &programs); result.Error != nil {
		return nil, fmt.Errorf("Failed to look up prior solutions: %w", result.Error)
	}
	return programs, nil
}
