// Package scaffold renders a record into a Velen declaration and writes it to
// ./<path>/<name>.<ext>. It powers the "velen make" and "velen apply"
// commands. The declaration template is compiled once by MustTemplate and
// handed to New; the package keeps no template state of its own.
package scaffold
