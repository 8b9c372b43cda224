// Package codec implements the plank bundle text format.
//
// A bundle is one annotated text file embedding an ordered set of
// documents. Each document sits between two sentinel lines carrying its
// logical path; a metadata block near the top summarizes the set. Encode
// and Decode are pure string transforms with no I/O; everything around
// them (collection, materialization, reporting) lives in the adapters.
//
// The format, byte-exact:
//
//	@META_START
//	generator: <string>
//	timestamp: <string>
//	source_dir: <string>
//	file_count: <integer>
//	files: <comma-space-joined ordered path list>
//	@META_END
//
//	@FILE_START: <logical-path>
//	<raw content, verbatim>
//	@FILE_END: <logical-path>
//
// Sentinels start their own line. The encoder always appends exactly one
// structural newline after the raw content so the end sentinel starts a
// line; the decoder trims exactly that one newline back off. Banner,
// footer and group headers are free-form decoration the decoder ignores.
package codec
