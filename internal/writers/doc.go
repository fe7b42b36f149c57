// Package writers renders report payloads for the CLI.
//
// Output formats register themselves in init() blocks; commands
// dispatch by format name instead of switching inline.
package writers
