// Package importer turns a comma-separated list of amounts into parsed
// numbers. A batch is accepted whole or rejected whole: a single bad token
// fails the entire import and no amounts are returned.
package importer
