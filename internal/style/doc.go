// Package style resolves styled component definitions into concrete style
// declarations.
//
// A Definition is built on a raw Element or on another Definition and carries
// a static Param plus optional compute functions derived from instance props.
// Parent data is copied when the child is defined, so resolution is a flat
// pass over four sources in ascending priority: inherited, static, computed
// and instance.
//
// Each source is flattened for the active breakpoints (ApplyMedia), split
// into plain properties and direct styles (Parse) and reduced for the current
// interaction state (Parsed.Select). Plain properties are translated by an
// Engine; direct styles are used verbatim and outrank the translation of the
// same source.
//
// Breakpoints follow a cascading minimum-width model: the first tier is
// always active and every later tier activates once the width reaches the
// threshold of the tier before it.
package style
