package dto

type UploadTextRequest struct {
	Content string `json:"content"`
	Title   string `json:"title"`
}

type UploadTextStats struct {
	Title        string `json:"title"`
	Chunks       int    `json:"chunks"`
	SuccessCount int    `json:"successCount"`
	FailCount    int    `json:"failCount"`
	SuccessRate  string `json:"successRate"`
}

type UploadTextResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Stats   UploadTextStats `json:"stats"`
}

type StatsResponse struct {
	TotalChunks int64 `json:"totalChunks"`
	CacheSize   int   `json:"cacheSize"`
}
