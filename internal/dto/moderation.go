package dto

import "time"

type RateAnswerRequest struct {
	QAID string `json:"qaId"`
	Type string `json:"type"`
}

type ReportAnswerRequest struct {
	QAID string `json:"qaId"`
}

type ReportAnswerResponse struct {
	Success bool `json:"success"`
	Hidden  bool `json:"hidden"`
	Reports int  `json:"reports"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// AdminActionRequest carries the shared secret together with the target
// answer. The password is consumed by the admin middleware.
type AdminActionRequest struct {
	Password string `json:"password"`
	QAID     string `json:"qaId"`
}

type ReportedAnswer struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	Reports   int       `json:"reports"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"created_at"`
}

type ReportedAnswersResponse struct {
	Answers []ReportedAnswer `json:"answers"`
}
