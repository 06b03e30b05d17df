package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sent "github.com/grafrank/grafrank/sentence"
	"github.com/grafrank/grafrank/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type SentenceHandler struct {
	pool *sqlitex.Pool
}

var _ storage.SentenceRepository = (*SentenceHandler)(nil)

func NewSentenceHandler(pool *sqlitex.Pool) *SentenceHandler {
	return &SentenceHandler{pool: pool}
}

func (h *SentenceHandler) List() ([]string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var ids []string
	err = sqlitex.Execute(conn, "SELECT id FROM docs ORDER BY id", &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			ids = append(ids, stmt.ColumnText(0))
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (h *SentenceHandler) Read(docID string) ([]sent.Sentence, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var sents []sent.Sentence
	err = sqlitex.Execute(conn, "SELECT doc_id, digest, data FROM sentences WHERE doc_id = ? ORDER BY rowid", &sqlitex.ExecOptions{
		Args: []interface{}{docID},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			sn := sent.Sentence{
				DocID:  stmt.ColumnText(0),
				Digest: stmt.ColumnText(1),
			}
			if err := json.Unmarshal([]byte(stmt.ColumnText(2)), &sn.Tokens); err != nil {
				return err
			}
			sents = append(sents, sn)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if sents == nil {
		return nil, fmt.Errorf("doc not found: %s", docID)
	}

	return sents, nil
}

// FindByRoots intersects the root index per root, so only sentences
// containing ALL roots qualify. INTERSECT also deduplicates rowids.
func (h *SentenceHandler) FindByRoots(roots []string, after storage.Cursor, limit int, onMatch func(sent.Sentence) error) (storage.Cursor, error) {
	if len(roots) == 0 {
		return after, nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return after, err
	}
	defer h.pool.Put(conn)

	var queryBuilder strings.Builder
	var args []interface{}

	for i, root := range roots {
		if i > 0 {
			queryBuilder.WriteString(" INTERSECT ")
		}
		queryBuilder.WriteString("SELECT sentence_rowid FROM sentence_roots WHERE root = ? AND sentence_rowid > ?")
		args = append(args, root, after)
	}
	queryBuilder.WriteString(" LIMIT ?")
	args = append(args, limit)

	var rowIDs []int64
	err = sqlitex.Execute(conn, queryBuilder.String(), &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rowIDs = append(rowIDs, stmt.ColumnInt64(0))
			return nil
		},
	})
	if err != nil {
		return after, err
	}

	newCursor := after
	for _, rowID := range rowIDs {
		if storage.Cursor(rowID) > newCursor {
			newCursor = storage.Cursor(rowID)
		}

		var sn sent.Sentence
		err = sqlitex.Execute(conn, "SELECT doc_id, digest, data FROM sentences WHERE rowid = ?", &sqlitex.ExecOptions{
			Args: []interface{}{rowID},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				sn.DocID = stmt.ColumnText(0)
				sn.Digest = stmt.ColumnText(1)
				return json.Unmarshal([]byte(stmt.ColumnText(2)), &sn.Tokens)
			},
		})
		if err != nil {
			return after, err
		}
		if err := onMatch(sn); err != nil {
			return newCursor, err
		}
	}

	return newCursor, nil
}

func (h *SentenceHandler) Write(docID string, sents []sent.Sentence) error {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// transaction spans the doc row, its sentences and the root index
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, `
		INSERT INTO docs (id, imported)
		VALUES (?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(id) DO UPDATE SET imported = excluded.imported
	`, &sqlitex.ExecOptions{
		Args: []interface{}{docID},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc: %w", err)
	}

	// replace previous content for a re-imported doc
	err = sqlitex.Execute(conn, `
		DELETE FROM sentence_roots WHERE sentence_rowid IN
			(SELECT rowid FROM sentences WHERE doc_id = ?)
	`, &sqlitex.ExecOptions{
		Args: []interface{}{docID},
	})
	if err != nil {
		return err
	}
	err = sqlitex.Execute(conn, "DELETE FROM sentences WHERE doc_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{docID},
	})
	if err != nil {
		return err
	}

	for _, sn := range sents {
		data, marshalErr := json.Marshal(sn.Tokens)
		if marshalErr != nil {
			// assign so the deferred save sees the failure and rolls back
			err = marshalErr
			return err
		}

		err = sqlitex.Execute(conn, "INSERT INTO sentences (doc_id, digest, data) VALUES (?, ?, ?)", &sqlitex.ExecOptions{
			Args: []interface{}{docID, sn.Digest, string(data)},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence: %w", err)
		}
		sentRowID := conn.LastInsertRowID()

		uniqueRoots := make(map[string]bool)
		for _, tok := range sn.Tokens {
			if tok.Keep {
				uniqueRoots[tok.Root] = true
			}
		}

		for root := range uniqueRoots {
			err = sqlitex.Execute(conn, "INSERT INTO sentence_roots (root, sentence_rowid) VALUES (?, ?)", &sqlitex.ExecOptions{
				Args: []interface{}{root, sentRowID},
			})
			if err != nil {
				return fmt.Errorf("failed to insert root: %w", err)
			}
		}
	}

	return nil
}
