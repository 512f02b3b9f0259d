package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

func (r *eventRepo) AppendRunEvent(ctx context.Context, data RunEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO run_events
		(sequence, timestamp, run_id, lesson_id, score, total, percentage)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		seqNum, r.now().UTC().UnixMilli(), data.RunID, data.LessonID,
		data.Score, data.Total, data.Percentage)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error) {
	var (
		q    strings.Builder
		args []any
	)
	q.WriteString(`SELECT sequence, timestamp, run_id, lesson_id, score, total, percentage FROM run_events`)
	if opts.LessonID != "" {
		q.WriteString(` WHERE lesson_id = ?`)
		args = append(args, opts.LessonID)
	}
	q.WriteString(` ORDER BY sequence DESC`)
	if opts.Limit > 0 {
		q.WriteString(` LIMIT ?`)
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			rec RunRecord
			ms  int64
		)
		if err := rows.Scan(&rec.Sequence, &ms, &rec.RunID, &rec.LessonID,
			&rec.Score, &rec.Total, &rec.Percentage); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ms).UTC()
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

func (r *eventRepo) LessonStats(ctx context.Context) ([]LessonStat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT lesson_id, COUNT(*), MAX(percentage),
		(SELECT percentage FROM run_events l WHERE l.lesson_id = r.lesson_id ORDER BY sequence DESC LIMIT 1)
		FROM run_events r GROUP BY lesson_id`)
	if err != nil {
		return nil, fmt.Errorf("query run stats: %w", err)
	}

	byLesson := make(map[string]*LessonStat)
	var order []string
	for rows.Next() {
		var s LessonStat
		if err := rows.Scan(&s.LessonID, &s.Runs, &s.BestPercentage, &s.LastPercentage); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan run stats: %w", err)
		}
		byLesson[s.LessonID] = &s
		order = append(order, s.LessonID)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate run stats: %w", err)
	}
	rows.Close()

	// Answers are counted separately: a lesson abandoned mid-run has answers
	// but no run event.
	rows, err = r.db.QueryContext(ctx, `SELECT lesson_id, COUNT(*), COALESCE(SUM(correct), 0)
		FROM answer_events GROUP BY lesson_id`)
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id             string
			total, correct int
		)
		if err := rows.Scan(&id, &total, &correct); err != nil {
			return nil, fmt.Errorf("scan answer stats: %w", err)
		}
		s, ok := byLesson[id]
		if !ok {
			s = &LessonStat{LessonID: id}
			byLesson[id] = s
			order = append(order, id)
		}
		s.Answers = total
		s.CorrectAnswers = correct
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answer stats: %w", err)
	}

	slices.Sort(order)
	stats := make([]LessonStat, 0, len(order))
	for _, id := range order {
		stats = append(stats, *byLesson[id])
	}
	return stats, nil
}
