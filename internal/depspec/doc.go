// Package depspec reads dependency specifications: declarations of which
// features exist and which features each of them immediately depends on.
//
// Two formats are understood. The line format puts one declaration per line,
// the declared name first and every dependency prefixed with the marker '#':
//
//	LibV1:AP_amplitude #LibV1:peak_voltage #LibV1:voltage_base
//	LibV1:peak_voltage #LibV1:peak_indices
//
// The HCL format declares the same information as `feature` blocks and can
// also carry a `settings` block of default string metadata:
//
//	feature "LibV1:AP_amplitude" {
//	  depends_on = ["LibV1:peak_voltage", "LibV1:voltage_base"]
//	}
//
//	settings {
//	  Threshold = -20
//	}
//
// Lexing is lenient: names are not validated here. Malformed names surface
// when a plan is linked against the feature library registry.
package depspec
