package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingKind is the community feedback type on an answer.
type RatingKind string

const (
	RatingLike    RatingKind = "like"
	RatingDislike RatingKind = "dislike"
)

// HideReportThreshold is the report count at which an answer is hidden
// automatically. Only an explicit moderator approve reverses it.
const HideReportThreshold = 3

// QAInteraction is a persisted record of one answered question together with
// its community feedback counters.
type QAInteraction struct {
	ID        uuid.UUID `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	Likes     int       `db:"likes"`
	Dislikes  int       `db:"dislikes"`
	Reports   int       `db:"reports"`
	Hidden    bool      `db:"hidden"`
	CreatedAt time.Time `db:"created_at"`
}

// AnswerReport is one row of the append-only report audit trail. Repeat
// reports from the same reporter are kept as separate rows.
type AnswerReport struct {
	ID        uuid.UUID `db:"id"`
	QAID      uuid.UUID `db:"qa_id"`
	Reporter  string    `db:"reporter_identifier"`
	CreatedAt time.Time `db:"created_at"`
}
