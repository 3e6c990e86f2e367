// Package anagram decides whether two texts are anagrams of each other.
//
// Texts are first normalized according to a Mode: the default ASCII mode
// lower-cases the input and keeps only [a-z0-9], the fold mode additionally
// strips diacritics before applying the ASCII rule, and the Unicode mode keeps
// every letter and digit. Two normalized texts are anagrams when they hold the
// same multiset of characters.
//
// Two strategies produce identical answers: a frequency count (the default,
// linear time) and a sort-and-compare. Both reject texts whose normalized
// lengths differ before doing any counting or sorting. An absent input (a nil
// *string) is never an anagram of anything and is not an error.
//
// Everything in this package is pure and safe for concurrent use.
package anagram
