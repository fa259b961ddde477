// Package params collects the host bindings (USER, HOST, DURTIME, ...) from
// the places an operator can supply them outside STAX: the process
// environment, .env style params files and NAME=VALUE pairs, and applies them
// to a wklprep.Inputs.
//
// Binding names are case-insensitive. Later sources override earlier ones;
// the CLI applies them lowest priority first:
//
//	yaml config < WKLPREP_* environment < --params-file < --param < dedicated flags
//
// # Example Usage
//
//	var in wklprep.Inputs
//	pairs, err := params.ParseKeyValuePairs([]string{"HOST=h1", "DURTIME=2h"})
//	if err != nil {
//	    return err
//	}
//	if err := params.ApplyPairs(&in, pairs); err != nil {
//	    return err
//	}
package params
