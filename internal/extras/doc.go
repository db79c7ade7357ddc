// Package extras serializes the optional attributes of a record into the
// "extras" block of a declaration: zero or more lines of the form
// "\n    <key>: <value>" in a fixed per-kind order.
//
// Values are written verbatim. A value containing a newline will break the
// surrounding declaration syntax; callers own that input.
package extras
