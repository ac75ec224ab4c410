package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Column names shared by the migration and the query builders.
const (
	sessionsTable = "quiz_sessions"
	answersTable  = "quiz_answers"

	colID         = "id"
	colStartedAt  = "started_at"
	colFinishedAt = "finished_at"
	colPairs      = "pairs"
	colQuestions  = "questions"
	colAnswered   = "answered"
	colCorrect    = "correct"
	colDirection  = "direction"
	colChoices    = "choices"
	colComplete   = "complete"

	colSessionID  = "session_id"
	colSeq        = "seq"
	colPrompt     = "prompt"
	colExpected   = "expected"
	colSelected   = "selected"
	colAnsweredAt = "answered_at"
)

var (
	// QuizSessionsColumns holds the columns for the "quiz_sessions" table.
	// Timestamps are unix milliseconds.
	QuizSessionsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeString, Unique: true},
		{Name: colStartedAt, Type: field.TypeInt64},
		{Name: colFinishedAt, Type: field.TypeInt64},
		{Name: colPairs, Type: field.TypeInt},
		{Name: colQuestions, Type: field.TypeInt},
		{Name: colAnswered, Type: field.TypeInt},
		{Name: colCorrect, Type: field.TypeInt},
		{Name: colDirection, Type: field.TypeString},
		{Name: colChoices, Type: field.TypeInt},
		{Name: colComplete, Type: field.TypeBool},
	}
	// QuizSessionsTable holds the schema information for the "quiz_sessions" table.
	QuizSessionsTable = &schema.Table{
		Name:       sessionsTable,
		Columns:    QuizSessionsColumns,
		PrimaryKey: []*schema.Column{QuizSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizsession_started_at",
				Columns: []*schema.Column{QuizSessionsColumns[1]},
			},
		},
	}

	// QuizAnswersColumns holds the columns for the "quiz_answers" table.
	QuizAnswersColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colSeq, Type: field.TypeInt},
		{Name: colPrompt, Type: field.TypeString},
		{Name: colExpected, Type: field.TypeString},
		{Name: colSelected, Type: field.TypeString},
		{Name: colCorrect, Type: field.TypeBool},
		{Name: colAnsweredAt, Type: field.TypeInt64},
		{Name: colSessionID, Type: field.TypeString},
	}
	// QuizAnswersTable holds the schema information for the "quiz_answers" table.
	QuizAnswersTable = &schema.Table{
		Name:       answersTable,
		Columns:    QuizAnswersColumns,
		PrimaryKey: []*schema.Column{QuizAnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quiz_answers_quiz_sessions_answers",
				Columns:    []*schema.Column{QuizAnswersColumns[7]},
				RefColumns: []*schema.Column{QuizSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "quizanswer_session_id_seq",
				Unique:  true,
				Columns: []*schema.Column{QuizAnswersColumns[7], QuizAnswersColumns[1]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuizSessionsTable,
		QuizAnswersTable,
	}
)

func init() {
	QuizAnswersTable.ForeignKeys[0].RefTable = QuizSessionsTable
}
