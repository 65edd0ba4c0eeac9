// Package linker turns a dependency map into an execution plan table by
// resolving every name of every evaluation plan to a concrete callable.
//
// For each declared feature, in declaration order, the linker resolves the
// evaluation plan and then, for each plan entry:
//
//  1. splits it into library, feature and wildcard (MissingVersionDelimiter),
//  2. looks the library up in the registry (UnknownLibrary),
//  3. looks the feature up in that library (UnknownFeature),
//  4. appends the resulting Step.
//
// Linking a feature is all-or-nothing: a feature that fails contributes no
// entry, and Link returns no table at all when any feature failed. The
// first error of each failing feature is reported, joined into one error.
// Link is a pure function of its inputs.
package linker
