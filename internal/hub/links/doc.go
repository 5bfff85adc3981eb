// Package links holds the pure hub rules: default status seeding, link
// clickability, link URLs with the language suffix, and section assembly.
//
// Nothing here performs I/O. Callers load the case, call these functions and
// persist any status map they are handed back.
package links
