// Package dragnet extracts the main content, and optionally the comments,
// from HTML documents. A document is segmented into blocks, several
// families of features are computed per block, and a pre-fitted model
// decides which blocks are content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, goquery/, sqlite/) or the
// algorithm they provide (e.g., blockify/, features/, lcs/).
package dragnet
