// Package input defines the platform input source the editor reads from.
//
// A Source delivers raw keyboard bytes, answers modifier-key queries and
// owns clipboard access. The key package decodes the bytes; platform
// implementations live in subpackages (see input/tty). ScriptSource replays
// a fixed byte script and is used to drive the editor without a terminal.
package input
