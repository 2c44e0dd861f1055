// Package render draws circuits as text diagrams, one wire line per
// qubit. Diagrams are a presentation concern only: nothing in the
// simulation path depends on this package.
package render
