package engine

import (
	"context"
	"database/sql"
)

// StatementError records one statement that failed during Apply.
type StatementError struct {
	Index int // 1-based statement position in the script
	Err   error
}

// ApplyResult summarizes a script execution.
type ApplyResult struct {
	Total   int
	Applied int
	Failed  []StatementError
}

// Apply executes statements against db one at a time, tolerating individual
// failures and reporting them in the result, so one bad statement does not
// abandon the rest of a load. onProgress, when non-nil, is called after every
// statement attempt. Apply stops early only when ctx is done.
func Apply(ctx context.Context, db *sql.DB, statements []string, onProgress func()) (*ApplyResult, error) {
	res := &ApplyResult{Total: len(statements)}

	for i, stmt := range statements {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			res.Failed = append(res.Failed, StatementError{Index: i + 1, Err: err})
		} else {
			res.Applied++
		}
		if onProgress != nil {
			onProgress()
		}
	}
	return res, nil
}
