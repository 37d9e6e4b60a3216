// Package application provides application initialization and dependency wiring.
// It builds the solver, reporter and tree walker from the resolved
// configuration and runs one of the three modes: a single instance file, the
// files of one directory, or a recursive walk over leaf directories.
package application
