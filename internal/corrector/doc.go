// Package corrector provides the concrete link correction backends.
//
//   - Command runs an external text-generation CLI (gemini by default) with
//     the prompt on stdin and reads the corrected document from stdout.
//   - NATS sends the prompt to a correction service over NATS request/reply.
//   - Mapping rewrites eligible link targets from a static old-to-new table
//     without any external call.
//
// All backends satisfy correction.Corrector. None of them retries; failures
// are returned to the orchestrator, which falls back to the original content.
package corrector
