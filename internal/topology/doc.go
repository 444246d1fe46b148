// Package topology holds the parsed cluster topology description that drives
// generation.
//
// The description is a JSON document (comments and trailing commas are
// accepted) enumerating auth instances, channels and their parts, the db
// role, and the database connection descriptors every rendered config file
// refers to. Values are consumed verbatim; this package only checks that the
// document is structurally complete and exposes the small set of derived
// fields (channel naming, effective maps, lower-cased server name) that the
// generator threads through.
package topology
