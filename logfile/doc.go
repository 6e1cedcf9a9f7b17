// Package logfile maintains a bounded, newest-first, line-oriented log file.
//
// A [Log] is addressed purely by path: every [Log.Prepend] reads the whole
// file, inserts the new message at the front, truncates to the configured
// maximum line count, and rewrites the file in full. The file and its parent
// directories are created lazily on the first write. There is no in-memory
// cache between calls and no file locking; concurrent writers to the same
// path can race and lose updates, so callers needing multi-writer safety
// must serialize externally.
//
// Stored content is plain UTF-8 with no header and no metadata. A message
// containing embedded newlines is stored literally, so the line limit counts
// physical file lines, not messages.
package logfile
