// Package passes provides the small amount of plumbing shared by
// module transforms: the Pass interface, the raw string option bag a
// driver fills from pass arguments or a YAML config file, and the
// response-file convention that lets a long option value live in a
// file referenced as @path.
package passes
