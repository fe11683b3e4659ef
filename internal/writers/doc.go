// Package writers turns a finished design into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (TSV + pretty block, JSON, FASTA).
//   - The core engine stays domain-only; designapp stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
