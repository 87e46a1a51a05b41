// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render writes report results to an io.Writer.

# Formats

	table  aligned text, one block per report (default)
	json   indented JSON array of {report, title, count, rows}
	yaml   the same structure as YAML

Unknown values print as NULL in tables and null in JSON/YAML. Table floats
are limited to four decimals and integers get thousands separators
(go-humanize).

# Errors

WriteError renders a failure. In JSON mode it writes an error object so
stdout stays machine-readable.
*/
package render
