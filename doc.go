// Package strlab is a small collection of string primitives built without
// Go's built-in string growth, for places where the allocation policy itself
// is the point.
//
// What is in strlab?
//
//	bytestr/    String: a growable byte string that owns its buffer and keeps
//	            length and capacity apart, with a 16-byte hysteresis before it
//	            gives memory back. Value operations: clone, assign (from another
//	            String, raw bytes or an int64), compare, filter, concatenate,
//	            sort, integer parsing and io.WriterTo output.
//	examples/   a runnable program that compares two lines and writes the
//	            ordered pair to a file through bytestr.
//
// Errors are explicit return values matched with errors.Is; nothing panics on
// user input and there is no global error state.
//
//	go get github.com/katalvlaran/strlab/bytestr
package strlab
