package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/grafrank/grafrank/phrase"
	"github.com/grafrank/grafrank/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type PhraseHandler struct {
	pool *sqlitex.Pool
}

var _ storage.PhraseRepository = (*PhraseHandler)(nil)

func NewPhraseHandler(pool *sqlitex.Pool) *PhraseHandler {
	return &PhraseHandler{pool: pool}
}

func (h *PhraseHandler) Runs() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var names []string
	err = sqlitex.Execute(conn, "SELECT name FROM runs ORDER BY name", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			names = append(names, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return names, nil
}

func (h *PhraseHandler) Phrases(run string) ([]phrase.Lexeme, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var lexemes []phrase.Lexeme
	err = sqlitex.Execute(conn, "SELECT data FROM phrases WHERE run = ? ORDER BY pos", &sqlitex.ExecOptions{
		Args: []interface{}{run},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			var rl phrase.Lexeme
			if err := json.Unmarshal([]byte(stmt.ColumnText(0)), &rl); err != nil {
				return err
			}
			lexemes = append(lexemes, rl)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if lexemes == nil {
		return nil, fmt.Errorf("run not found: %s", run)
	}

	return lexemes, nil
}

func (h *PhraseHandler) WritePhrases(run string, lexemes []phrase.Lexeme) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, `
		INSERT INTO runs (name, updated)
		VALUES (?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(name) DO UPDATE SET updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{run},
	})
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	err = sqlitex.Execute(conn, "DELETE FROM phrases WHERE run = ?", &sqlitex.ExecOptions{
		Args: []interface{}{run},
	})
	if err != nil {
		return err
	}

	for pos, rl := range lexemes {
		data, marshalErr := json.Marshal(rl)
		if marshalErr != nil {
			// assign so the deferred save sees the failure and rolls back
			err = marshalErr
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO phrases (run, pos, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{run, pos, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert phrase: %w", err)
		}
	}

	return nil
}
