// Package handlers provides the editor's key handlers in dispatch order.
//
// Default builds the full ordered list. Each handler can also be built on
// its own for tests or custom dispatch tables.
package handlers
