package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/okhramov/llm-telegram-bot/pkg/domain"
)

// promptsRepository keeps named system-prompt templates in the database and
// serves reads from an in-memory copy loaded at startup. Writes go to the
// database first; the copy is only updated after the write succeeds, so a
// failed save never shows up in Get or List.
type promptsRepository struct {
	db *sql.DB

	mu    sync.RWMutex
	cache map[string]string
}

func NewPromptsRepository(db *sql.DB) *promptsRepository {
	return &promptsRepository{
		db:    db,
		cache: make(map[string]string),
	}
}

// Load reads all templates into memory. An empty store is seeded with the
// "default" template so a fresh deployment works out of the box. Meant to
// run once at startup; there is no live reload.
func (p *promptsRepository) Load(ctx context.Context) error {
	const query = `SELECT name, content FROM prompts`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("loading prompts: %w", err)
	}
	defer rows.Close()

	loaded := make(map[string]string)
	for rows.Next() {
		var name, content string
		if err := rows.Scan(&name, &content); err != nil {
			return fmt.Errorf("scanning prompt row: %w", err)
		}
		loaded[name] = content
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading prompt rows: %w", err)
	}

	if len(loaded) == 0 {
		const insert = `INSERT INTO prompts (name, content) VALUES ($1, $2)`
		if _, err := p.db.ExecContext(ctx, insert, domain.DefaultPromptName, domain.DefaultSystemPrompt); err != nil {
			return fmt.Errorf("seeding default prompt: %w", err)
		}
		loaded[domain.DefaultPromptName] = domain.DefaultSystemPrompt
	}

	p.mu.Lock()
	p.cache = loaded
	p.mu.Unlock()

	return nil
}

// Get returns the template content; an unknown name is not an error.
func (p *promptsRepository) Get(name string) (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	content, ok := p.cache[name]
	return content, ok
}

// List returns a copy of all known templates. Callers must not rely on
// ordering.
func (p *promptsRepository) List() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[string]string, len(p.cache))
	for name, content := range p.cache {
		out[name] = content
	}
	return out
}

func (p *promptsRepository) AddOrUpdate(ctx context.Context, name, content string) error {
	const query = `
		INSERT INTO prompts (name, content)
		VALUES ($1, $2)
		ON CONFLICT (name)
		DO UPDATE SET content = EXCLUDED.content
	`

	if _, err := p.db.ExecContext(ctx, query, name, content); err != nil {
		return fmt.Errorf("saving prompt %q: %w", name, err)
	}

	p.mu.Lock()
	p.cache[name] = content
	p.mu.Unlock()

	return nil
}
