// Package correction runs the link correction pipeline for one document.
//
// The Orchestrator extracts and classifies links, calls a Corrector only when
// at least one link is eligible, and falls back to the original content when
// the Corrector fails. The Validator measures what changed by re-scanning both
// texts and comparing the sets of eligible link targets.
package correction
