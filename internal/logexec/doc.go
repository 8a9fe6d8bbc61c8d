// Package logexec implements a transform that instruments a module
// with calls logging execution at every function entry, loop header
// and return. Running the rewritten module yields an ordered trace
// that can be diffed against another run, for example the same module
// on a different host, to pin down where behavior diverges.
//
// Each inserted call passes a single 32-bit identifier to an imported
// logging function the host must provide. The identifier packs the
// event kind together with a sequence number unique across the whole
// run; the optional export map file relates entry identifiers back to
// function names.
//
// Which functions participate is controlled by an ignore list or an
// include list, both accepting the @file response-file convention.
package logexec
