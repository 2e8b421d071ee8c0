// Package file moves configuration structures between memory and disk.
//
// Load and Write are the whole contract: single-shot, synchronous calls
// that open, operate, and close on every invocation. No file handle is
// held between a load and a later write, and nothing is cached, so two
// loads without an intervening write always observe the same bytes.
//
// Writes are atomic. github.com/google/renameio stages the encoded bytes
// in a temp file, fsyncs, and renames over the target, so a crash cannot
// leave a half-written config file behind.
//
// Error classes stay distinguishable per errors.Is: ErrDecode/ErrEncode
// for format problems, plain wrapped I/O errors (fs.ErrNotExist and
// friends) for filesystem problems. The first-run pattern relies on this:
// callers treat a decode failure as "populate defaults and persist", and
// an I/O failure as a real fault.
package file
