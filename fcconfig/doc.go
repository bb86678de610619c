// Package fcconfig collects every tunable option of the FlowCutter cutter,
// the multi-cutter ensemble, and the nested-dissection driver into one
// validated, immutable Config value, built with the same functional-options
// discipline used throughout this module's constructors.
//
// Construct with New(opts...); New applies defaults first, then each option
// left-to-right, then validates the result and returns a *ConfigError for
// the first violated range or incompatible combination.
package fcconfig
