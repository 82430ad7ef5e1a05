// Package output turns calculator results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (result lines, the via
//     table, JSON documents).
//   • The calculation core stays domain-only; cmd stays wiring-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package output
