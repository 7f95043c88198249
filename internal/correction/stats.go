package correction

import "time"

// Stats summarizes one correction run.
//
// TotalLinks == SkippedLinks + ProcessableLinks always holds. CorrectedLinks
// and NewLinks compare distinct eligible targets before and after, so a
// target that changes in only some of its occurrences is not counted.
type Stats struct {
	TotalLinks       int           `json:"total_links"`
	SkippedLinks     int           `json:"skipped_links"`
	ProcessableLinks int           `json:"processable_links"`
	CorrectedLinks   int           `json:"corrected_links"`
	NewLinks         int           `json:"new_links"`
	LLMInvoked       bool          `json:"llm_called"`
	Fallback         bool          `json:"fallback"`
	Duration         time.Duration `json:"duration"`
}

// Result is the outcome of Orchestrator.Process.
type Result struct {
	Content string
	Stats   Stats
}
