// Package checker runs the submission format checks for a directory.
//
// It locates the two submission files (the config file, accepted under
// either of its two historical names, and the data file), parses each one
// with pkg/assign, validates the result with pkg/schema, and collects the
// outcome into a Report. The two file checks are independent: a fatal
// error in one never prevents the other from being attempted.
//
// Reports render either as the console form students see (one ✅/❌ line
// per file plus the individual error messages) or as JSON for tooling.
package checker
