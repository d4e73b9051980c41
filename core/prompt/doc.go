// Package prompt materializes prompt templates from files. Templates use
// positional !<INPUT i>! placeholders and may carry a leading comment block
// terminated by the [Marker] delimiter.
package prompt
