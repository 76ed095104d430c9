// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const notesTable = "notes"

// notesSQL builds statements with SQLite's "?" placeholders.
var notesSQL = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertNoteQuery(title, content string) (string, []any, error) {
	return notesSQL.
		Insert(notesTable).
		Columns("title", "content", "hidden").
		Values(title, content, false).
		ToSql()
}

func buildListVisibleNotesQuery() (string, []any, error) {
	return notesSQL.
		Select("id", "title").
		From(notesTable).
		Where(sq.Eq{"hidden": false}).
		OrderBy("id ASC").
		ToSql()
}

func buildFetchNoteQuery(id int64) (string, []any, error) {
	return notesSQL.
		Select("id", "title", "content", "hidden").
		From(notesTable).
		Where(sq.Eq{"id": id, "hidden": false}).
		ToSql()
}

func buildUpdateNoteQuery(id int64, title, content string) (string, []any, error) {
	return notesSQL.
		Update(notesTable).
		Set("title", title).
		Set("content", content).
		Where(sq.Eq{"id": id, "hidden": false}).
		ToSql()
}

// buildSoftDeleteNoteQuery does not filter on hidden: SQLite counts a matched
// row as changed even when the value is already set, which keeps a repeated
// delete successful.
func buildSoftDeleteNoteQuery(id int64) (string, []any, error) {
	return notesSQL.
		Update(notesTable).
		Set("hidden", true).
		Where(sq.Eq{"id": id}).
		ToSql()
}
