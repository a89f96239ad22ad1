// Package flow drives form filling as a deterministic state machine: ask the
// first unanswered question, validate the answer, mirror it to the frontend,
// move on. The submit gate enforces completeness and explicit confirmation
// before the frontend is told to submit.
package flow
