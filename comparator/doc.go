// Package comparator holds the category comparators and the birth sex rule.
//
// Each comparator receives two present category records and appends findings
// for field-level differences. Optional sub-fields go through the presence
// decision table; nothing here panics on absent data.
package comparator
