// Package dispatcher routes decoded key events to an ordered list of
// handlers.
//
// Handlers are tried in order and the first one that claims the event wins;
// later handlers never see it. The order encodes the editor's priorities:
// exit confirmation first, then copy and cut, mode toggling, command-mode
// commands, movement, character insertion, deletion and finally select-all.
//
// A handler either applies its whole effect and returns true, or leaves the
// state untouched and returns false. The exit handler is the one exception:
// every event that is not a repeated exit press cancels a pending exit as it
// passes through.
//
// The handlers themselves live in the handlers subpackage.
package dispatcher
